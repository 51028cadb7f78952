package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"time"
)

// updateRetries bounds the optimistic transaction retries of RedisStore.Update
const updateRetries = 16

// RedisStore keeps each note as a json document under notes.<id>
type RedisStore struct {
	cache   *redis.Client
	timeout time.Duration
	now     func() time.Time
}

// NewRedisStore returns a RedisStore bounding every redis call by timeout
func NewRedisStore(cache *redis.Client, timeout time.Duration) *RedisStore {
	return &RedisStore{cache: cache, timeout: timeout, now: utcNow}
}

func (s *RedisStore) Create(ctx context.Context, id, content string) (Note, error) {
	n := s.now()
	note := Note{ID: id, Content: content, CreatedAt: n, UpdatedAt: n}
	data, err := json.Marshal(note)
	if err != nil {
		return Note{}, fmt.Errorf("failed to encode note %s: %w", id, err)
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.timeout)
	defer tcCancel()
	ok, err := s.cache.SetNX(tcCtx, fmt.Sprintf(noteKey, id), data, 0).Result()
	if err != nil {
		return Note{}, fmt.Errorf("failed to set note %s: %w", id, err)
	}
	if !ok {
		return Note{}, ErrDuplicateID
	}
	return note, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Note, error) {
	tcCtx, tcCancel := context.WithTimeout(ctx, s.timeout)
	defer tcCancel()
	return decode(s.cache.Get(tcCtx, fmt.Sprintf(noteKey, id)), id)
}

func (s *RedisStore) Update(ctx context.Context, id, content string) (Note, error) {
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, s.timeout)
	defer tcCancel()

	var note Note
	txf := func(tx *redis.Tx) error {
		current, err := decode(tx.Get(tcCtx, key), id)
		if err != nil {
			return err
		}
		current.Content = content
		current.UpdatedAt = nextUpdate(current, s.now())
		data, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to encode note %s: %w", id, err)
		}
		_, err = tx.TxPipelined(tcCtx, func(pipe redis.Pipeliner) error {
			pipe.Set(tcCtx, key, data, 0)
			return nil
		})
		if err == nil {
			note = current
		}
		return err
	}

	for i := 0; i < updateRetries; i++ {
		err := s.cache.Watch(tcCtx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return Note{}, err
		}
		return note, nil
	}
	return Note{}, fmt.Errorf("failed to update note %s: too many concurrent writers", id)
}

func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	tcCtx, tcCancel := context.WithTimeout(ctx, s.timeout)
	defer tcCancel()
	n, err := s.cache.Exists(tcCtx, fmt.Sprintf(noteKey, id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check note %s: %w", id, err)
	}
	return n > 0, nil
}

func decode(cmd *redis.StringCmd, id string) (Note, error) {
	get, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return Note{}, ErrNotFound
	}
	if err != nil {
		return Note{}, fmt.Errorf("failed to get note %s: %w", id, err)
	}
	var note Note
	if err := json.Unmarshal([]byte(get), &note); err != nil {
		return Note{}, fmt.Errorf("error parsing stored note %s: %w", id, err)
	}
	return note, nil
}
