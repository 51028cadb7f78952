package note

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ribgsilva/note-share/business/v1/ident"
	"github.com/ribgsilva/note-share/persistence/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService() *Service {
	return NewService(zap.NewNop().Sugar(), note.NewMemoryStore(), ident.NewAllocator())
}

func TestCreateWithCustomExtension(t *testing.T) {
	ctx := context.Background()
	s := newService()

	created, err := s.Create(ctx, NewNote{Content: "<p>a</p>", CustomExtension: "My Notes!"})
	require.NoError(t, err)
	assert.Equal(t, "mynotes", created.Id)
	assert.Equal(t, "<p>a</p>", created.Content)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateTakenExtensionFallsBack(t *testing.T) {
	ctx := context.Background()
	s := newService()

	first, err := s.Create(ctx, NewNote{Content: "first", CustomExtension: "draft"})
	require.NoError(t, err)
	require.Equal(t, "draft", first.Id)

	second, err := s.Create(ctx, NewNote{Content: "second", CustomExtension: "draft"})
	require.NoError(t, err)
	assert.NotEqual(t, "draft", second.Id)
	assert.True(t, ident.IsLegal(second.Id))

	kept, err := s.Find(ctx, "draft")
	require.NoError(t, err)
	assert.Equal(t, "first", kept.Content)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newService()

	for _, content := range []string{"", "plain", "<h1>title</h1><p>body &amp; more</p>", "emoji 🎉"} {
		created, err := s.Create(ctx, NewNote{Content: content})
		require.NoError(t, err)

		found, err := s.Find(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, content, found.Content)
	}
}

func TestMissingNote(t *testing.T) {
	ctx := context.Background()
	s := newService()

	_, err := s.Find(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Update(ctx, "ghost", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newService()

	created, err := s.Create(ctx, NewNote{Content: "v1"})
	require.NoError(t, err)

	previous := created
	for _, content := range []string{"v2", "v3", "v3"} {
		updated, err := s.Update(ctx, created.Id, content)
		require.NoError(t, err)
		assert.Equal(t, content, updated.Content)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(previous.UpdatedAt))
		previous = updated
	}

	found, err := s.Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "v3", found.Content)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	s := newService()

	assert.Equal(t, Availability{Extension: "draft", Legal: true, Available: true}, s.CheckAvailability(ctx, "draft"))

	_, err := s.Create(ctx, NewNote{CustomExtension: "draft"})
	require.NoError(t, err)

	assert.Equal(t, Availability{Extension: "draft", Legal: true, Available: false}, s.CheckAvailability(ctx, "draft"))
	assert.False(t, s.CheckAvailability(ctx, "???").Available)
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := newService()

	const n = 64
	ids := make(chan string, n)
	custom := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := s.Create(ctx, NewNote{Content: "x"})
			assert.NoError(t, err)
			ids <- created.Id

			// everyone races for the same custom extension, exactly one gets it
			claimed, err := s.Create(ctx, NewNote{Content: "y", CustomExtension: "shared"})
			assert.NoError(t, err)
			custom <- claimed.Id
		}(i)
	}
	wg.Wait()
	close(ids)
	close(custom)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicated id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	shared := 0
	for id := range custom {
		if id == "shared" {
			shared++
		}
	}
	assert.Equal(t, 1, shared)
}

type brokenStore struct {
	note.MemoryStore
	err error
}

func (b *brokenStore) Create(context.Context, string, string) (note.Note, error) {
	return note.Note{}, b.err
}

func (b *brokenStore) Get(context.Context, string) (note.Note, error) {
	return note.Note{}, b.err
}

func (b *brokenStore) Exists(context.Context, string) (bool, error) {
	return false, b.err
}

func TestStoreFailuresAreHidden(t *testing.T) {
	ctx := context.Background()
	s := NewService(zap.NewNop().Sugar(), &brokenStore{err: errors.New("connection refused by 10.0.0.7")}, ident.NewAllocator())

	_, err := s.Find(ctx, "draft")
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotContains(t, err.Error(), "10.0.0.7")

	_, err = s.Create(ctx, NewNote{Content: "x", CustomExtension: "draft"})
	assert.ErrorIs(t, err, ErrInternal)

	// a failing lookup never reports a candidate as free
	assert.False(t, s.CheckAvailability(ctx, "draft").Available)
}

func TestDuplicateIDIsInternal(t *testing.T) {
	ctx := context.Background()
	s := NewService(zap.NewNop().Sugar(), &brokenStore{err: note.ErrDuplicateID}, ident.NewAllocator())

	_, err := s.Create(ctx, NewNote{Content: "x"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// racingStore rejects the first create as if another process had just stored the same id
type racingStore struct {
	*note.MemoryStore
	err      error
	rejected []string
}

func (r *racingStore) Create(ctx context.Context, id, content string) (note.Note, error) {
	if len(r.rejected) == 0 {
		r.rejected = append(r.rejected, id)
		return note.Note{}, r.err
	}
	return r.MemoryStore.Create(ctx, id, content)
}

func TestCreateRetriesWithRandomID(t *testing.T) {
	for _, storeErr := range []error{note.ErrDuplicateID, note.ErrIDTooLong} {
		t.Run(storeErr.Error(), func(t *testing.T) {
			ctx := context.Background()
			store := &racingStore{MemoryStore: note.NewMemoryStore(), err: storeErr}
			s := NewService(zap.NewNop().Sugar(), store, ident.NewAllocator())

			created, err := s.Create(ctx, NewNote{Content: "x", CustomExtension: "shared"})
			require.NoError(t, err)
			assert.Equal(t, []string{"shared"}, store.rejected)
			assert.NotEqual(t, "shared", created.Id)
			assert.True(t, ident.IsLegal(created.Id))

			found, err := s.Find(ctx, created.Id)
			require.NoError(t, err)
			assert.Equal(t, "x", found.Content)
		})
	}
}
