package notes

import (
	"context"
	"github.com/ribgsilva/note-share/business/v1/note"
)

// Service is what the notes handlers need from business/v1/note
type Service interface {
	Create(ctx context.Context, newN note.NewNote) (note.Note, error)
	Find(ctx context.Context, id string) (note.Note, error)
	Update(ctx context.Context, id, content string) (note.Note, error)
	CheckAvailability(ctx context.Context, candidate string) note.Availability
}

// Handlers serves the notes api on top of a Service
type Handlers struct {
	Notes Service
}

type Created struct {
	Success bool      `json:"success" example:"true"`
	NoteId  string    `json:"noteId" example:"mynotes"`
	Url     string    `json:"url" example:"http://localhost:8080/note/mynotes"`
	Note    note.Note `json:"note"`
}

type Found struct {
	Success bool      `json:"success" example:"true"`
	Note    note.Note `json:"note"`
}

type Checked struct {
	Success bool `json:"success" example:"true"`
	note.Availability
}

type UpdateBody struct {
	Content string `json:"content" example:"<p>my edited note</p>"`
}
