package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *SQLStore) Get(ctx context.Context, id string) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	return s.find(dbCtx, id)
}

func (s *SQLStore) Exists(ctx context.Context, id string) (bool, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	return s.exists(dbCtx, id)
}

func (s *SQLStore) exists(ctx context.Context, id string) (bool, error) {
	_, err := s.find(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

func (s *SQLStore) find(ctx context.Context, id string) (Note, error) {
	stmt, err := s.db.PrepareContext(ctx, "SELECT id, content, createdAt, updatedAt FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	var note Note
	err = stmt.QueryRowContext(ctx, id).Scan(&note.ID, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}
	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()
	return note, nil
}
