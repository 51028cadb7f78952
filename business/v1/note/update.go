package note

import "context"

// Update replaces the content of a note, the last write wins
func (s *Service) Update(ctx context.Context, id, content string) (Note, error) {
	updated, err := s.store.Update(ctx, id, content)
	return s.result("update", id, updated, err)
}
