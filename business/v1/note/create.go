package note

import (
	"context"
	"errors"
	"github.com/ribgsilva/note-share/business/v1/ident"
	"github.com/ribgsilva/note-share/persistence/v1/note"
)

// Create stores a new note. A free and legal custom extension becomes its id,
// anything else gets a random id instead of an error.
func (s *Service) Create(ctx context.Context, newN NewNote) (Note, error) {
	s.creating.Lock()
	defer s.creating.Unlock()

	exists := s.exists(ctx)
	id := s.alloc.Allocate(newN.CustomExtension, exists)
	created, err := s.store.Create(ctx, id, newN.Content)

	// another process sharing the store took the id first, or the store cannot hold it
	if errors.Is(err, note.ErrDuplicateID) || errors.Is(err, note.ErrIDTooLong) {
		s.log.Warnw("create", "id", id, "status", "retrying with a random id", "reason", err, "customExtension", newN.CustomExtension)
		id = s.alloc.Allocate("", exists)
		created, err = s.store.Create(ctx, id, newN.Content)
	}
	if errors.Is(err, note.ErrDuplicateID) {
		s.log.Errorw("create", "id", id, "ERROR", "allocated id already stored", "customExtension", newN.CustomExtension)
	}
	if err == nil && newN.CustomExtension != "" && id != ident.Normalize(newN.CustomExtension) {
		s.log.Infow("create", "id", id, "status", "custom extension not used", "customExtension", newN.CustomExtension)
	}
	return s.result("create", id, created, err)
}
