package note

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-share/business/v1/ident"
	"github.com/ribgsilva/note-share/persistence/v1/note"
	"go.uber.org/zap"
	"sync"
)

// Store is the storage a Service works on, see persistence/v1/note for the implementations
type Store interface {
	Create(ctx context.Context, id, content string) (note.Note, error)
	Get(ctx context.Context, id string) (note.Note, error)
	Update(ctx context.Context, id, content string) (note.Note, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// Service is the only entry point to notes for the transports
type Service struct {
	log   *zap.SugaredLogger
	store Store
	alloc ident.Allocator

	// creating serializes identifier allocation and insertion
	creating sync.Mutex
}

func NewService(log *zap.SugaredLogger, store Store, alloc ident.Allocator) *Service {
	return &Service{
		log:   log,
		store: store,
		alloc: alloc,
	}
}

// exists adapts the store lookup for the allocator, a failing lookup counts as taken
func (s *Service) exists(ctx context.Context) func(string) bool {
	return func(id string) bool {
		ok, err := s.store.Exists(ctx, id)
		if err != nil {
			s.log.Errorw("exists", "id", id, "ERROR", err)
			return true
		}
		return ok
	}
}

// internal logs err and hides it behind ErrInternal
func (s *Service) internal(op, id string, err error) error {
	s.log.Errorw(op, "id", id, "ERROR", err)
	return fmt.Errorf("%s note: %w", op, ErrInternal)
}

func (s *Service) result(op, id string, n note.Note, err error) (Note, error) {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, s.internal(op, id, err)
	default:
		return Note{Id: n.ID, Content: n.Content, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt}, nil
	}
}
