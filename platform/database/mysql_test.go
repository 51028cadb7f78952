package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/proullon/ramsql/driver"
)

func TestOpen(t *testing.T) {
	db, err := Open("ramsql", "DatabaseOpenTest", time.Second)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("nodriver", "whatever", time.Second)
	assert.Error(t, err)
}
