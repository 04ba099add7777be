package store

import (
	"context"
	"time"
)

// DefaultNoteTitle is what a fresh note is called until renamed.
const DefaultNoteTitle = "Untitled"

type Note struct {
	Id        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TodoItem struct {
	Id        string
	NoteId    string
	Text      string
	Completed bool
	Deadline  *time.Time
	CreatedAt time.Time
}

// Excerpt is a verbatim piece of note text kept in the starred list or the
// index.
type Excerpt struct {
	Id        string
	NoteId    string
	Text      string
	CreatedAt time.Time
}

type (
	StarredItem = Excerpt
	IndexItem   = Excerpt
)

// NotePatch is a partial note update; nil fields are left alone.
type NotePatch struct {
	Title   *string
	Content *string
}

type AuthStatus int

const (
	AuthPending AuthStatus = iota
	AuthAuthenticated
	AuthUnauthenticated
)

func (s AuthStatus) String() string {
	switch s {
	case AuthAuthenticated:
		return "authenticated"
	case AuthUnauthenticated:
		return "unauthenticated"
	default:
		return "pending"
	}
}

type Module string

const (
	ModuleNotes    Module = "notes"
	ModuleSchedule Module = "schedule"
)

type ScheduleView string

const (
	ViewCalendar ScheduleView = "calendar"
	ViewTodo     ScheduleView = "todo"
	ViewStarred  ScheduleView = "starred"
	ViewWeekly   ScheduleView = "weekly"
)

// State is the mirror of the signed-in user's data plus navigation.
type State struct {
	Auth         AuthStatus
	Loading      bool
	Notes        []Note
	Todos        []TodoItem
	Starred      []StarredItem
	IndexItems   []IndexItem
	ActiveModule Module
	ScheduleView ScheduleView
	// CurrentNoteId is empty when no note is open.
	CurrentNoteId string
	SearchQuery   string
}

//go:generate mockgen -destination=../../internal/mocks/store/mock_gateway.go -package=mock_store notecraft-be/pkg/store Gateway

// Gateway is the remote data-access surface the store mirrors.
type Gateway interface {
	ListNotes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context) (Note, error)
	UpdateNote(ctx context.Context, id string, patch NotePatch) (Note, error)
	DeleteNote(ctx context.Context, id string) error

	ListTodos(ctx context.Context) ([]TodoItem, error)
	CreateTodo(ctx context.Context, noteId, text string, deadline *time.Time) (TodoItem, error)
	ToggleTodo(ctx context.Context, id string, completed bool) (TodoItem, error)
	DeleteTodo(ctx context.Context, id string) error

	ListStarred(ctx context.Context) ([]StarredItem, error)
	CreateStarred(ctx context.Context, noteId, text string) (StarredItem, error)
	DeleteStarred(ctx context.Context, id string) error

	ListIndexItems(ctx context.Context) ([]IndexItem, error)
	CreateIndexItem(ctx context.Context, noteId, text string) (IndexItem, error)
	DeleteIndexItem(ctx context.Context, id string) error
}

// Notifier shows transient failure messages to the user.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }
