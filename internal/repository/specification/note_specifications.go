package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByNoteID selects dependents (todos, starred, index items) of one note.
type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}
