package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-share/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"sync"
)

// Service is what the consumer needs from business/v1/note
type Service interface {
	Create(ctx context.Context, newN note.NewNote) (note.Note, error)
	Update(ctx context.Context, id, content string) (note.Note, error)
}

type event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Consume applies note events received from sub until ctx is done, running at most maxWorkers at once.
// Every message is acked, a failing event is logged and dropped.
func Consume(ctx context.Context, log *zap.SugaredLogger, sub *pubsub.Subscription, svc Service, maxWorkers int) error {
	workers := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		message, err := sub.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		workers <- struct{}{}
		wg.Add(1)
		go func(m *pubsub.Message) {
			defer wg.Done()
			defer func() { <-workers }()
			defer m.Ack()

			log.Infow("consume", "status", "message received", "size", len(m.Body))
			if err := Handle(ctx, svc, m.Body); err != nil {
				log.Errorw("consume", "ERROR", err)
			}
		}(message)
	}
}

// Handle applies one json encoded note.Event
func Handle(ctx context.Context, svc Service, body []byte) error {
	var e event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case note.EventCreate:
		var c note.NewNote
		if err := json.Unmarshal(e.Data, &c); err != nil {
			return fmt.Errorf("failed to parse create event: %w", err)
		}
		if _, err := svc.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
	case note.EventUpdate:
		var u note.UpdateNote
		if err := json.Unmarshal(e.Data, &u); err != nil {
			return fmt.Errorf("failed to parse update event: %w", err)
		}
		if u.Id == "" {
			return errors.New("update event without id")
		}
		if _, err := svc.Update(ctx, u.Id, u.Content); err != nil {
			return fmt.Errorf("failed to update note %s: %w", u.Id, err)
		}
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}
