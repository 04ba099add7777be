package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateExcerptRequest creates either a starred item or an index item.
type CreateExcerptRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
	Text   string    `json:"text" validate:"required"`
}

type ExcerptResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
