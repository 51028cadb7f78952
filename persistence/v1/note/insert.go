package note

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

// MaxSQLIDLength is the width of the notes.id column
const MaxSQLIDLength = 255

func (s *SQLStore) Create(ctx context.Context, id, content string) (Note, error) {
	if len(id) > MaxSQLIDLength {
		return Note{}, ErrIDTooLong
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	exists, err := s.exists(dbCtx, id)
	if err != nil {
		return Note{}, err
	}
	if exists {
		return Note{}, ErrDuplicateID
	}

	n := s.now()
	stmt, err := s.db.PrepareContext(dbCtx, "INSERT INTO notes (id, content, createdAt, updatedAt) VALUES (?, ?, ?, ?)")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()
	if _, err = stmt.ExecContext(dbCtx, id, content, n, n); err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return Note{}, ErrDuplicateID
		}
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return Note{ID: id, Content: content, CreatedAt: n, UpdatedAt: n}, nil
}
