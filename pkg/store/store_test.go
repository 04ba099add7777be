package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	mock_store "notecraft-be/internal/mocks/store"
	"notecraft-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errOffline = errors.New("offline")

type notifications struct {
	mu       sync.Mutex
	messages []string
}

func (n *notifications) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *notifications) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func newStore(t *testing.T, opts ...store.Option) (*store.Store, *mock_store.MockGateway, *notifications) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock_store.NewMockGateway(ctrl)
	n := &notifications{}
	return store.New(gw, n, opts...), gw, n
}

// seeded returns an authenticated store holding one saved note with a todo
// and a starred excerpt.
func seeded(t *testing.T) (*store.Store, *mock_store.MockGateway, *notifications) {
	t.Helper()
	s, gw, n := newStore(t)
	now := time.Now()

	gw.EXPECT().ListNotes(gomock.Any()).Return([]store.Note{{Id: "n1", Title: "Plan", CreatedAt: now, UpdatedAt: now}}, nil)
	gw.EXPECT().ListTodos(gomock.Any()).Return([]store.TodoItem{{Id: "t1", NoteId: "n1", Text: "ship", CreatedAt: now}}, nil)
	gw.EXPECT().ListStarred(gomock.Any()).Return([]store.StarredItem{{Id: "s1", NoteId: "n1", Text: "key line", CreatedAt: now}}, nil)
	gw.EXPECT().ListIndexItems(gomock.Any()).Return([]store.IndexItem{{Id: "i1", NoteId: "n1", Text: "term", CreatedAt: now}}, nil)

	s.SetAuthStatus(store.AuthAuthenticated)
	s.Wait()
	return s, gw, n
}

func TestSetAuthStatus_LoadsAllCollections(t *testing.T) {
	s, _, n := seeded(t)

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Len(t, st.Notes, 1)
	assert.Len(t, st.Todos, 1)
	assert.Len(t, st.Starred, 1)
	assert.Len(t, st.IndexItems, 1)
	assert.Empty(t, n.all())
}

func TestSetAuthStatus_FailedLoadIsReported(t *testing.T) {
	s, gw, n := newStore(t)

	gw.EXPECT().ListNotes(gomock.Any()).Return([]store.Note{{Id: "n1"}}, nil)
	gw.EXPECT().ListTodos(gomock.Any()).Return(nil, errOffline)
	gw.EXPECT().ListStarred(gomock.Any()).Return(nil, nil)
	gw.EXPECT().ListIndexItems(gomock.Any()).Return(nil, nil)

	s.SetAuthStatus(store.AuthAuthenticated)
	assert.True(t, s.Snapshot().Loading)
	s.Wait()

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Len(t, st.Notes, 1)
	assert.Empty(t, st.Todos)
	assert.Equal(t, []string{"Failed to load todos: offline"}, n.all())
}

func TestSetAuthStatus_SignOutClears(t *testing.T) {
	s, _, _ := seeded(t)
	require.True(t, s.OpenNote("n1"))

	s.SetAuthStatus(store.AuthUnauthenticated)

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Notes)
	assert.Empty(t, st.Todos)
	assert.Empty(t, st.Starred)
	assert.Empty(t, st.IndexItems)
	assert.Empty(t, st.CurrentNoteId)
}

func TestSetAuthStatus_PendingOnlySetsLoading(t *testing.T) {
	s, _, _ := newStore(t)

	s.SetAuthStatus(store.AuthUnauthenticated)
	require.False(t, s.Snapshot().Loading)

	s.SetAuthStatus(store.AuthPending)
	assert.True(t, s.Snapshot().Loading)
}

func TestSetAuthStatus_StaleLoadIsDiscarded(t *testing.T) {
	s, gw, n := newStore(t)
	release := make(chan struct{})

	gw.EXPECT().ListNotes(gomock.Any()).DoAndReturn(func(context.Context) ([]store.Note, error) {
		<-release
		return []store.Note{{Id: "n1"}}, nil
	})
	gw.EXPECT().ListTodos(gomock.Any()).DoAndReturn(func(context.Context) ([]store.TodoItem, error) {
		<-release
		return nil, errOffline
	})
	gw.EXPECT().ListStarred(gomock.Any()).Return(nil, nil)
	gw.EXPECT().ListIndexItems(gomock.Any()).Return(nil, nil)

	s.SetAuthStatus(store.AuthAuthenticated)
	s.SetAuthStatus(store.AuthUnauthenticated)
	close(release)
	s.Wait()

	st := s.Snapshot()
	assert.Empty(t, st.Notes)
	assert.False(t, st.Loading)
	assert.Empty(t, n.all())
}

func TestCreateNote_ReplacesPlaceholder(t *testing.T) {
	s, gw, _ := seeded(t)
	created := store.Note{Id: "n2", Title: store.DefaultNoteTitle, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	gw.EXPECT().CreateNote(gomock.Any()).Return(created, nil)

	tmp := s.CreateNote()
	require.True(t, store.IsPlaceholder(tmp))
	require.True(t, s.OpenNote(tmp))

	note, ok := s.Note(tmp)
	require.True(t, ok)
	assert.Equal(t, "Untitled", note.Title)
	assert.Equal(t, "", note.Content)

	s.Wait()

	st := s.Snapshot()
	assert.Equal(t, "n2", st.CurrentNoteId)
	note, ok = s.Note(tmp)
	require.True(t, ok)
	assert.Equal(t, "n2", note.Id)
}

func TestCreateNote_FailureRemovesPlaceholder(t *testing.T) {
	s, gw, n := seeded(t)
	gw.EXPECT().CreateNote(gomock.Any()).Return(store.Note{}, errOffline)

	tmp := s.CreateNote()
	assert.Len(t, s.Snapshot().Notes, 2)
	s.Wait()

	_, ok := s.Note(tmp)
	assert.False(t, ok)
	assert.Len(t, s.Snapshot().Notes, 1)
	assert.Equal(t, []string{"Failed to create note: offline"}, n.all())
}

func TestUpdateNote_FailureKeepsLocalChange(t *testing.T) {
	s, gw, n := seeded(t)
	gw.EXPECT().UpdateNote(gomock.Any(), "n1", gomock.Any()).Return(store.Note{}, errOffline)

	title := "Renamed"
	s.UpdateNote("n1", store.NotePatch{Title: &title})
	s.Wait()

	note, _ := s.Note("n1")
	assert.Equal(t, "Renamed", note.Title)
	assert.Equal(t, []string{"Failed to update note: offline"}, n.all())
}

func TestEditNoteLocal_UpdatedAtNeverGoesBack(t *testing.T) {
	clock := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	s, gw, _ := newStore(t, store.WithClock(func() time.Time { return clock }))
	release := make(chan struct{})
	gw.EXPECT().CreateNote(gomock.Any()).DoAndReturn(func(context.Context) (store.Note, error) {
		<-release
		return store.Note{}, errOffline
	})

	s.SetAuthStatus(store.AuthUnauthenticated)
	id := s.CreateNote()

	content := "a"
	clock = clock.Add(time.Minute)
	require.True(t, s.EditNoteLocal(id, store.NotePatch{Content: &content}))
	first, _ := s.Note(id)

	clock = clock.Add(-time.Hour)
	content = "ab"
	require.True(t, s.EditNoteLocal(id, store.NotePatch{Content: &content}))
	second, _ := s.Note(id)

	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
	assert.False(t, second.UpdatedAt.Before(second.CreatedAt))
	close(release)
	s.Wait()
}

func TestDeleteNote_CascadesInOneStep(t *testing.T) {
	s, gw, _ := seeded(t)
	release := make(chan struct{})
	gw.EXPECT().DeleteNote(gomock.Any(), "n1").DoAndReturn(func(context.Context, string) error {
		<-release
		return nil
	})
	require.True(t, s.OpenNote("n1"))

	s.DeleteNote("n1")

	// Checked before the server answers.
	st := s.Snapshot()
	assert.Empty(t, st.Notes)
	assert.Empty(t, st.Todos)
	assert.Empty(t, st.Starred)
	assert.Empty(t, st.IndexItems)
	assert.Empty(t, st.CurrentNoteId)

	close(release)
	s.Wait()
}

func TestDeleteNote_FailureDoesNotRestore(t *testing.T) {
	s, gw, n := seeded(t)
	gw.EXPECT().DeleteNote(gomock.Any(), "n1").Return(errOffline)

	s.DeleteNote("n1")
	s.Wait()

	assert.Empty(t, s.Snapshot().Notes)
	assert.Equal(t, []string{"Failed to delete note: offline"}, n.all())
}

func TestToggleTodo_TwiceRestoresValue(t *testing.T) {
	s, gw, _ := seeded(t)
	gw.EXPECT().ToggleTodo(gomock.Any(), "t1", true).Return(store.TodoItem{}, nil)
	gw.EXPECT().ToggleTodo(gomock.Any(), "t1", false).Return(store.TodoItem{}, nil)

	s.ToggleTodo("t1")
	s.Wait()
	s.ToggleTodo("t1")
	s.Wait()

	assert.False(t, s.Snapshot().Todos[0].Completed)
}

func TestToggleTodo_FailureRollsBack(t *testing.T) {
	s, gw, n := seeded(t)
	gw.EXPECT().ToggleTodo(gomock.Any(), "t1", true).Return(store.TodoItem{}, errOffline)

	s.ToggleTodo("t1")
	assert.True(t, s.Snapshot().Todos[0].Completed)
	s.Wait()

	assert.False(t, s.Snapshot().Todos[0].Completed)
	assert.Equal(t, []string{"Failed to update todo: offline"}, n.all())
}

func TestCreateTodo_FailureRemovesOptimisticItem(t *testing.T) {
	s, gw, n := seeded(t)
	gw.EXPECT().CreateTodo(gomock.Any(), "n1", "buy milk", nil).Return(store.TodoItem{}, errOffline)

	id := s.CreateTodo("n1", "buy milk", nil)
	require.NotEmpty(t, id)
	assert.Len(t, s.Snapshot().Todos, 2)
	s.Wait()

	todos := s.Snapshot().Todos
	require.Len(t, todos, 1)
	assert.Equal(t, "t1", todos[0].Id)
	assert.Equal(t, []string{"Failed to create todo: offline"}, n.all())
}

func TestCreateTodo_UnknownNote(t *testing.T) {
	s, _, n := seeded(t)

	assert.Empty(t, s.CreateTodo("missing", "x", nil))
	assert.Len(t, s.Snapshot().Todos, 1)
	assert.Equal(t, []string{"Failed to create todo: note not found"}, n.all())
}

func TestCreateTodo_WaitsForPlaceholderNote(t *testing.T) {
	s, gw, _ := seeded(t)
	release := make(chan struct{})
	gw.EXPECT().CreateNote(gomock.Any()).DoAndReturn(func(context.Context) (store.Note, error) {
		<-release
		return store.Note{Id: "n2", Title: store.DefaultNoteTitle}, nil
	})
	gw.EXPECT().CreateTodo(gomock.Any(), "n2", "draft", nil).Return(store.TodoItem{Id: "t2", NoteId: "n2", Text: "draft"}, nil)

	noteTmp := s.CreateNote()
	todoTmp := s.CreateTodo(noteTmp, "draft", nil)
	require.NotEmpty(t, todoTmp)

	close(release)
	s.Wait()

	todos := s.Snapshot().Todos
	require.Len(t, todos, 2)
	assert.Equal(t, "t2", todos[1].Id)
	assert.Equal(t, "n2", todos[1].NoteId)
}

func TestDeletePlaceholder_RemovesOrphanAfterCreate(t *testing.T) {
	s, gw, n := seeded(t)
	started := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().CreateStarred(gomock.Any(), "n1", "quote").DoAndReturn(func(context.Context, string, string) (store.StarredItem, error) {
		close(started)
		<-release
		return store.StarredItem{Id: "s2", NoteId: "n1", Text: "quote"}, nil
	})
	gw.EXPECT().DeleteStarred(gomock.Any(), "s2").Return(nil)

	tmp := s.CreateStarred("n1", "quote")
	<-started
	s.DeleteStarred(tmp)
	close(release)
	s.Wait()

	starred := s.Snapshot().Starred
	require.Len(t, starred, 1)
	assert.Equal(t, "s1", starred[0].Id)
	assert.Empty(t, n.all())
}

func TestDeletePlaceholder_BeforeSendSkipsCreate(t *testing.T) {
	s, gw, n := seeded(t)
	release := make(chan struct{})
	gw.EXPECT().CreateNote(gomock.Any()).DoAndReturn(func(context.Context) (store.Note, error) {
		<-release
		return store.Note{Id: "n2", Title: store.DefaultNoteTitle}, nil
	})
	// CreateStarred and DeleteStarred are never expected: the excerpt is
	// gone before its note has a server id.

	noteTmp := s.CreateNote()
	tmp := s.CreateStarred(noteTmp, "quote")
	require.NotEmpty(t, tmp)
	s.DeleteStarred(tmp)
	close(release)
	s.Wait()

	starred := s.Snapshot().Starred
	require.Len(t, starred, 1)
	assert.Equal(t, "s1", starred[0].Id)
	assert.Empty(t, n.all())
}

func TestSetAuthStatus_ReloadDropsStalePlaceholders(t *testing.T) {
	s, gw, n := seeded(t)
	release := make(chan struct{})
	gw.EXPECT().CreateNote(gomock.Any()).DoAndReturn(func(context.Context) (store.Note, error) {
		<-release
		return store.Note{Id: "n2", Title: store.DefaultNoteTitle}, nil
	})

	tmp := s.CreateNote()
	require.True(t, s.OpenNote(tmp))

	s.SetAuthStatus(store.AuthPending)
	st := s.Snapshot()
	require.Len(t, st.Notes, 1)
	assert.Equal(t, "n1", st.Notes[0].Id)
	assert.Empty(t, st.CurrentNoteId)

	gw.EXPECT().ListNotes(gomock.Any()).Return([]store.Note{{Id: "n1"}, {Id: "n2"}}, nil)
	gw.EXPECT().ListTodos(gomock.Any()).Return(nil, nil)
	gw.EXPECT().ListStarred(gomock.Any()).Return(nil, nil)
	gw.EXPECT().ListIndexItems(gomock.Any()).Return(nil, nil)
	s.SetAuthStatus(store.AuthAuthenticated)
	close(release)
	s.Wait()

	var ids []string
	for _, note := range s.Snapshot().Notes {
		ids = append(ids, note.Id)
	}
	assert.Equal(t, []string{"n1", "n2"}, ids)
	_, ok := s.Note(tmp)
	assert.False(t, ok)
	assert.Empty(t, n.all())
}

func TestIndexItems_CreateAndDelete(t *testing.T) {
	s, gw, n := seeded(t)
	gw.EXPECT().CreateIndexItem(gomock.Any(), "n1", "glossary").Return(store.IndexItem{Id: "i2", NoteId: "n1", Text: "glossary"}, nil)
	gw.EXPECT().DeleteIndexItem(gomock.Any(), "i1").Return(errOffline)

	s.CreateIndexItem("n1", "glossary")
	s.DeleteIndexItem("i1")
	s.Wait()

	items := s.Snapshot().IndexItems
	require.Len(t, items, 1)
	assert.Equal(t, "i2", items[0].Id)
	assert.Equal(t, []string{"Failed to delete index item: offline"}, n.all())
}

func TestNavigation(t *testing.T) {
	s, _, _ := seeded(t)

	s.SetActiveModule(store.ModuleSchedule)
	s.SetScheduleView(store.ViewWeekly)
	s.SetSearchQuery("plan")
	assert.False(t, s.OpenNote("nope"))

	st := s.Snapshot()
	assert.Equal(t, store.ModuleSchedule, st.ActiveModule)
	assert.Equal(t, store.ViewWeekly, st.ScheduleView)
	assert.Equal(t, "plan", st.SearchQuery)

	require.True(t, s.OpenNote("n1"))
	assert.Equal(t, store.ModuleNotes, s.Snapshot().ActiveModule)
	s.CloseNote()
	assert.Empty(t, s.Snapshot().CurrentNoteId)
}
