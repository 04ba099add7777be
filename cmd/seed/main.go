package main

import (
	"context"
	"flag"
	"log"
	"time"

	"notecraft-be/internal/config"
	"notecraft-be/internal/entity"
	"notecraft-be/internal/pkg/serverutils"
	"notecraft-be/internal/repository/specification"
	"notecraft-be/internal/repository/unitofwork"
	"notecraft-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// seed creates a demo user with a handful of notes and prints a token the
// CLI can use against the local server.
func main() {
	email := flag.String("email", "demo@notecraft.local", "demo user email")
	flag.Parse()

	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: *email})
	if err != nil {
		log.Fatal("Error: Failed to look up demo user:", err)
	}
	if user == nil {
		user = &entity.User{Id: uuid.New(), Email: *email, FullName: "Demo User"}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			log.Fatal("Error: Failed to create demo user:", err)
		}
		color.Green("Created user %s", user.Email)
	}

	if err := seedNotes(ctx, uow, user.Id); err != nil {
		log.Fatal("Error: Failed to seed notes:", err)
	}

	token, err := serverutils.GenerateToken(cfg.Auth.JwtSecret, user.Id, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal("Error: Failed to sign token:", err)
	}
	color.Cyan("NOTECRAFT_TOKEN=%s", token)
}

func seedNotes(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) error {
	count, err := uow.NoteRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if count > 0 {
		color.Yellow("User already has %d note(s), skipping", count)
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	now := time.Now()
	for _, d := range demoNotes {
		note := &entity.Note{Id: uuid.New(), Title: d.title, Content: d.content, UserId: userId}
		if err := uow.NoteRepository().Create(ctx, note); err != nil {
			return err
		}
		for i, text := range d.todos {
			todo := &entity.TodoItem{Id: uuid.New(), NoteId: note.Id, UserId: userId, Text: text}
			if i == 0 {
				due := now.AddDate(0, 0, 2)
				todo.Deadline = &due
			}
			if err := uow.TodoRepository().Create(ctx, todo); err != nil {
				return err
			}
		}
		if d.starred != "" {
			item := &entity.StarredItem{Id: uuid.New(), NoteId: note.Id, UserId: userId, Text: d.starred}
			if err := uow.StarredRepository().Create(ctx, item); err != nil {
				return err
			}
		}
		if d.indexed != "" {
			item := &entity.IndexItem{Id: uuid.New(), NoteId: note.Id, UserId: userId, Text: d.indexed}
			if err := uow.IndexItemRepository().Create(ctx, item); err != nil {
				return err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	color.Green("Seeded %d notes", len(demoNotes))
	return nil
}
