package unitofwork

import (
	"context"

	"notecraft-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	TodoRepository() contract.TodoRepository
	StarredRepository() contract.StarredRepository
	IndexItemRepository() contract.IndexItemRepository
}
