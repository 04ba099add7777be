package contract

import (
	"context"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StarredRepository interface {
	Create(ctx context.Context, item *entity.StarredItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StarredItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StarredItem, error)
}
