package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTE_TEST_PORT", "")
	assert.Equal(t, "8080", OrDefault(log, "NOTE_TEST_PORT", "8080"))

	t.Setenv("NOTE_TEST_PORT", "9090")
	assert.Equal(t, "9090", OrDefault(log, "NOTE_TEST_PORT", "8080"))

	t.Setenv("NOTE_TEST_TIMEOUT", "3s")
	assert.Equal(t, 3*time.Second, DurationDefault(log, "NOTE_TEST_TIMEOUT", "1s"))

	t.Setenv("NOTE_TEST_TIMEOUT", "soon")
	assert.Equal(t, time.Second, DurationDefault(log, "NOTE_TEST_TIMEOUT", "1s"))

	t.Setenv("NOTE_TEST_WORKERS", "four")
	assert.Equal(t, 1, IntDefault(log, "NOTE_TEST_WORKERS", "1"))

	t.Setenv("NOTE_TEST_ENABLED", "t")
	assert.True(t, BoolDefault(log, "NOTE_TEST_ENABLED", "f"))
}
