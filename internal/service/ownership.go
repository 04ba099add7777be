package service

import (
	"context"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/repository/specification"
	"notecraft-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ownedNote fetches a note scoped to its owner. Missing and foreign notes
// both come back as ErrNotFoundOrForbidden.
func ownedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, translateError("load note", err)
	}
	if note == nil {
		return nil, ErrNotFoundOrForbidden
	}
	return note, nil
}

func owned(userId uuid.UUID, id uuid.UUID) []specification.Specification {
	return []specification.Specification{
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	}
}
