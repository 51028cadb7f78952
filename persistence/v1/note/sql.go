package note

import (
	"database/sql"
	"sync"
	"time"
)

// SQLStore keeps notes in the notes table.
// Writes are serialized by the store so the check and the write of a note happen as one step in this process.
type SQLStore struct {
	db      *sql.DB
	mu      sync.Mutex
	timeout time.Duration
	now     func() time.Time
}

// NewSQLStore returns a SQLStore bounding every statement by timeout, the schema must already exist
func NewSQLStore(db *sql.DB, timeout time.Duration) *SQLStore {
	return &SQLStore{
		db:      db,
		timeout: timeout,
		// mysql TIMESTAMP keeps whole seconds only
		now: func() time.Time { return utcNow().Truncate(time.Second) },
	}
}
