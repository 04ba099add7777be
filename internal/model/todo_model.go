package model

import (
	"time"

	"github.com/google/uuid"
)

type TodoItem struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Text      string     `gorm:"type:text;not null"`
	Completed bool       `gorm:"not null;default:false"`
	Deadline  *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
}

func (TodoItem) TableName() string {
	return "todo_items"
}
