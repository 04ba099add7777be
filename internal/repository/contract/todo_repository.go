package contract

import (
	"context"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.TodoItem) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TodoItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TodoItem, error)
}
