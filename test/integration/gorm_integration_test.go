package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/repository/specification"
	"notecraft-be/internal/repository/unitofwork"
	"notecraft-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	user := &entity.User{
		Id:       uuid.New(),
		Email:    "test-integration-" + uuid.New().String() + "@example.com",
		FullName: "Integration Test User",
	}
	require.NoError(t, uowFactory.NewUnitOfWork(ctx).UserRepository().Create(ctx, user))

	t.Run("Note with dependents is removed in one transaction", func(t *testing.T) {
		uow := uowFactory.NewUnitOfWork(ctx)

		note := &entity.Note{Id: uuid.New(), Title: "Integration", Content: "- [ ] one", UserId: user.Id}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))
		require.NoError(t, uow.TodoRepository().Create(ctx, &entity.TodoItem{Id: uuid.New(), NoteId: note.Id, UserId: user.Id, Text: "one"}))
		require.NoError(t, uow.StarredRepository().Create(ctx, &entity.StarredItem{Id: uuid.New(), NoteId: note.Id, UserId: user.Id, Text: "star"}))

		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		require.NoError(t, uow.TodoRepository().DeleteByNoteId(ctx, note.Id))
		require.NoError(t, uow.StarredRepository().DeleteByNoteId(ctx, note.Id))
		require.NoError(t, uow.IndexItemRepository().DeleteByNoteId(ctx, note.Id))
		require.NoError(t, uow.NoteRepository().Delete(ctx, note.Id))
		require.NoError(t, uow.Commit())

		todos, err := uow.TodoRepository().FindAll(ctx, specification.ByNoteID{NoteID: note.Id})
		assert.NoError(t, err)
		assert.Empty(t, todos)
	})

	t.Run("Owner scope hides foreign notes", func(t *testing.T) {
		uow := uowFactory.NewUnitOfWork(ctx)

		note := &entity.Note{Id: uuid.New(), Title: "Mine", UserId: user.Id}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))

		found, err := uow.NoteRepository().FindOne(ctx,
			specification.ByID{ID: note.Id},
			specification.UserOwnedBy{UserID: uuid.New()},
		)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
