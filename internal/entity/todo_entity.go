package entity

import (
	"time"

	"github.com/google/uuid"
)

type TodoItem struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	Text      string
	Completed bool
	Deadline  *time.Time
	CreatedAt time.Time
}
