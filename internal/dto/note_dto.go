package dto

import (
	"time"

	"github.com/google/uuid"
)

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateNoteRequest is a partial update: a nil field is left untouched.
type UpdateNoteRequest struct {
	Id      uuid.UUID `json:"-"`
	Title   *string   `json:"title,omitempty" validate:"omitempty,max=255"`
	Content *string   `json:"content,omitempty"`
}

type HeadingResponse struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

type OutlineResponse struct {
	NoteId   uuid.UUID         `json:"note_id"`
	Headings []HeadingResponse `json:"headings"`
}
