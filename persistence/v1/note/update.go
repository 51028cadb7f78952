package note

import (
	"context"
	"fmt"
)

func (s *SQLStore) Update(ctx context.Context, id, content string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	note, err := s.find(dbCtx, id)
	if err != nil {
		return Note{}, err
	}
	note.Content = content
	note.UpdatedAt = nextUpdate(note, s.now())

	stmt, err := s.db.PrepareContext(dbCtx, "UPDATE notes SET content = ?, updatedAt = ? WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()
	if _, err = stmt.ExecContext(dbCtx, note.Content, note.UpdatedAt, id); err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}
	return note, nil
}
