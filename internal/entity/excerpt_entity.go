package entity

import (
	"time"

	"github.com/google/uuid"
)

// StarredItem is a verbatim excerpt copied out of a note when starred. It
// keeps no link to the position it came from.
type StarredItem struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	Text      string
	CreatedAt time.Time
}

// IndexItem has the same excerpt semantics as StarredItem.
type IndexItem struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	Text      string
	CreatedAt time.Time
}
