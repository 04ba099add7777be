package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null;default:'Untitled'"`
	Content   string    `gorm:"type:text;not null;default:''"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`

	// Dependents are only declared so AutoMigrate emits ON DELETE CASCADE.
	Todos        []TodoItem    `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	StarredItems []StarredItem `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	IndexItems   []IndexItem   `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
