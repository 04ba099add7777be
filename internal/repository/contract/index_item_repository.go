package contract

import (
	"context"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IndexItemRepository interface {
	Create(ctx context.Context, item *entity.IndexItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IndexItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IndexItem, error)
}
