package note

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the requested note does not exist
	ErrNotFound = errors.New("note not found")
	// ErrInternal wraps every other failure, its details are logged and never returned to callers
	ErrInternal = errors.New("internal failure")
)

// Event types carried by the messaging transport
const (
	EventCreate = "create"
	EventUpdate = "update"
)

type Note struct {
	Id        string    `json:"id" example:"mynotes"`
	Content   string    `json:"content" example:"<p>my note</p>"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NewNote struct {
	Content         string `json:"content" example:"<p>my note</p>"`
	CustomExtension string `json:"customExtension,omitempty" example:"mynotes"`
}

type UpdateNote struct {
	Id      string `json:"id,omitempty" example:"mynotes"`
	Content string `json:"content" example:"<p>my edited note</p>"`
}

type Availability struct {
	Extension string `json:"extension" example:"mynotes"`
	Legal     bool   `json:"legal" example:"true"`
	Available bool   `json:"available" example:"true"`
}
