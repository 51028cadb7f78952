package schema

import (
	"context"
	"database/sql"
	"errors"
)

// Drop removes the notes table and every note in it
func Drop(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, dropSchema)
	if err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	return nil
}
