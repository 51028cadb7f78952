package note

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps notes in process memory, they live as long as the store does
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[string]Note
	now   func() time.Time
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(utcNow)
}

// NewMemoryStoreWithClock returns an empty MemoryStore reading the time from now
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		notes: make(map[string]Note),
		now:   now,
	}
}

func (s *MemoryStore) Create(_ context.Context, id, content string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; ok {
		return Note{}, ErrDuplicateID
	}
	n := s.now()
	note := Note{ID: id, Content: content, CreatedAt: n, UpdatedAt: n}
	s.notes[id] = note
	return note, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return note, nil
}

func (s *MemoryStore) Update(_ context.Context, id, content string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	note.Content = content
	note.UpdatedAt = nextUpdate(note, s.now())
	s.notes[id] = note
	return note, nil
}

func (s *MemoryStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.notes[id]
	return ok, nil
}

// Len returns how many notes are stored
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}
