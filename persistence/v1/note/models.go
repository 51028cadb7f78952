package note

import (
	"errors"
	"time"
)

const noteKey = "notes.%s"

var (
	// ErrNotFound is returned when no note is stored under the requested id
	ErrNotFound = errors.New("note not found")
	// ErrDuplicateID is returned by Create when the id is already taken
	ErrDuplicateID = errors.New("duplicate note id")
	// ErrIDTooLong is returned by Create when the store cannot hold an id that long
	ErrIDTooLong = errors.New("note id too long")
)

// Note is a stored note, stores hand out copies only
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// nextUpdate returns the UpdatedAt for a new revision of n, never going back in time
func nextUpdate(n Note, now time.Time) time.Time {
	if now.Before(n.UpdatedAt) {
		return n.UpdatedAt
	}
	return now
}

func utcNow() time.Time {
	return time.Now().UTC()
}
