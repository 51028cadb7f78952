// Package resources connects the note store selected by STORE_DRIVER.
package resources

import (
	"fmt"
	"github.com/ribgsilva/note-share/business/v1/note"
	persistence "github.com/ribgsilva/note-share/persistence/v1/note"
	"github.com/ribgsilva/note-share/platform/cache"
	"github.com/ribgsilva/note-share/platform/database"
	"github.com/ribgsilva/note-share/sys"
)

// Store builds the configured note store, filling sys.R with the connections it opens.
// The returned func closes them.
func Store() (note.Store, func(), error) {
	log := sys.R.Log

	switch sys.Configs.Store.Driver {
	case sys.StoreMemory:
		return persistence.NewMemoryStore(), func() {}, nil

	case sys.StoreRedis:
		rdb, err := cache.Open(sys.Configs.Cache.ConnectionURL, sys.Configs.Cache.User, sys.Configs.Cache.Pass, sys.Configs.Cache.PingTimeout)
		if err != nil {
			return nil, nil, err
		}
		sys.R.Cache = rdb
		return persistence.NewRedisStore(rdb, sys.Configs.Cache.OperationTimeout), func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("could not close redis conn gracefully: %s", err)
			}
		}, nil

	case sys.StoreMySQL:
		db, err := database.Open("mysql", sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
		if err != nil {
			return nil, nil, err
		}
		sys.R.Database = db
		return persistence.NewSQLStore(db, sys.Configs.Database.OperationTimeout), func() {
			if err := db.Close(); err != nil {
				log.Errorf("could not close db conn gracefully: %s", err)
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", sys.Configs.Store.Driver)
	}
}
