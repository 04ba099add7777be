package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	NoteId   uuid.UUID  `json:"note_id" validate:"required"`
	Text     string     `json:"text" validate:"required,max=2000"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

type ToggleTodoRequest struct {
	Id        uuid.UUID `json:"-"`
	Completed *bool     `json:"completed" validate:"required"`
}

type TodoResponse struct {
	Id        uuid.UUID  `json:"id"`
	NoteId    uuid.UUID  `json:"note_id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
