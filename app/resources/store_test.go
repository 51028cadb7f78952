package resources

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	persistence "github.com/ribgsilva/note-share/persistence/v1/note"
	"github.com/ribgsilva/note-share/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStore(t *testing.T) {
	sys.R.Log = zap.NewNop().Sugar()

	t.Run("memory", func(t *testing.T) {
		sys.Configs.Store.Driver = sys.StoreMemory
		store, closeFn, err := Store()
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &persistence.MemoryStore{}, store)
	})

	t.Run("redis", func(t *testing.T) {
		s := miniredis.RunT(t)
		sys.Configs.Store.Driver = sys.StoreRedis
		sys.Configs.Cache.ConnectionURL = s.Addr()
		sys.Configs.Cache.PingTimeout = time.Second
		sys.Configs.Cache.OperationTimeout = time.Second

		store, closeFn, err := Store()
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &persistence.RedisStore{}, store)
		assert.NotNil(t, sys.R.Cache)
	})

	t.Run("unknown", func(t *testing.T) {
		sys.Configs.Store.Driver = "postgres"
		_, _, err := Store()
		assert.Error(t, err)
	})
}
