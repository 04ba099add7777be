// Package store holds the client-side mirror of a user's notes, todos and
// excerpts. Every mutation is applied locally first and then confirmed
// against a Gateway in the background.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Store struct {
	mu    sync.Mutex
	state State

	gateway  Gateway
	notifier Notifier
	ctx      context.Context
	now      func() time.Time
	newID    func() string

	// generation changes on every auth transition. Responses that belong
	// to an older generation are dropped.
	generation   uint64
	placeholders map[string]*placeholder

	inflight sync.WaitGroup
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithContext sets the context passed to every gateway call.
func WithContext(ctx context.Context) Option {
	return func(s *Store) { s.ctx = ctx }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func New(gateway Gateway, notifier Notifier, opts ...Option) *Store {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	s := &Store{
		gateway:      gateway,
		notifier:     notifier,
		ctx:          context.Background(),
		now:          time.Now,
		newID:        newPlaceholderID,
		placeholders: make(map[string]*placeholder),
		state: State{
			Auth:         AuthPending,
			Loading:      true,
			ActiveModule: ModuleNotes,
			ScheduleView: ViewCalendar,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Notes = append([]Note(nil), s.state.Notes...)
	st.Todos = append([]TodoItem(nil), s.state.Todos...)
	st.Starred = append([]StarredItem(nil), s.state.Starred...)
	st.IndexItems = append([]IndexItem(nil), s.state.IndexItems...)
	return st
}

// ServerID returns the server id a placeholder was swapped for, or id
// itself.
func (s *Store) ServerID(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canonical(id)
}

// Wait blocks until every gateway call started so far has settled,
// including the work those calls queue.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// SetAuthStatus drives the store lifecycle. Becoming authenticated loads
// all four collections in parallel; signing out clears them.
func (s *Store) SetAuthStatus(status AuthStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.placeholders = make(map[string]*placeholder)
	s.dropPlaceholderRows()
	s.state.Auth = status

	switch status {
	case AuthPending:
		s.state.Loading = true
	case AuthUnauthenticated:
		s.state.Notes = nil
		s.state.Todos = nil
		s.state.Starred = nil
		s.state.IndexItems = nil
		s.state.CurrentNoteId = ""
		s.state.Loading = false
	case AuthAuthenticated:
		s.state.Loading = true
		s.load(s.generation)
	}
}

func (s *Store) load(gen uint64) {
	var wg sync.WaitGroup
	wg.Add(4)

	s.fetch(gen, &wg, "load notes", func(ctx context.Context) (func(*State), error) {
		notes, err := s.gateway.ListNotes(ctx)
		return func(st *State) {
			st.Notes = keepPlaceholders(notes, st.Notes, func(n Note) string { return n.Id }, s.pending)
		}, err
	})
	s.fetch(gen, &wg, "load todos", func(ctx context.Context) (func(*State), error) {
		todos, err := s.gateway.ListTodos(ctx)
		return func(st *State) {
			st.Todos = keepPlaceholders(todos, st.Todos, func(t TodoItem) string { return t.Id }, s.pending)
		}, err
	})
	s.fetch(gen, &wg, "load starred items", func(ctx context.Context) (func(*State), error) {
		items, err := s.gateway.ListStarred(ctx)
		return func(st *State) {
			st.Starred = keepPlaceholders(items, st.Starred, func(e Excerpt) string { return e.Id }, s.pending)
		}, err
	})
	s.fetch(gen, &wg, "load index", func(ctx context.Context) (func(*State), error) {
		items, err := s.gateway.ListIndexItems(ctx)
		return func(st *State) {
			st.IndexItems = keepPlaceholders(items, st.IndexItems, func(e Excerpt) string { return e.Id }, s.pending)
		}, err
	})

	s.goAsync(func() {
		wg.Wait()
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen == s.generation {
			s.state.Loading = false
		}
	})
}

func (s *Store) fetch(gen uint64, wg *sync.WaitGroup, action string, call func(context.Context) (func(*State), error)) {
	s.goAsync(func() {
		defer wg.Done()

		apply, err := call(s.ctx)

		s.mu.Lock()
		stale := gen != s.generation
		if !stale && err == nil {
			apply(&s.state)
		}
		s.mu.Unlock()

		if !stale && err != nil {
			s.notify(failure(action, err))
		}
	})
}

// keepPlaceholders returns the loaded rows plus any local rows still
// waiting on a create of the current session.
func keepPlaceholders[T any](loaded, local []T, id func(T) string, pending func(string) bool) []T {
	out := append([]T(nil), loaded...)
	for _, item := range local {
		if pending(id(item)) {
			out = append(out, item)
		}
	}
	return out
}

// dropPlaceholderRows removes rows whose create belongs to an earlier
// session. Their responses are discarded, so the rows could never settle.
func (s *Store) dropPlaceholderRows() {
	live := func(id string) bool { return !IsPlaceholder(id) || s.pending(id) }
	s.state.Notes = filter(s.state.Notes, func(n Note) bool { return live(n.Id) })
	s.state.Todos = filter(s.state.Todos, func(t TodoItem) bool { return live(t.Id) })
	s.state.Starred = filter(s.state.Starred, func(e Excerpt) bool { return live(e.Id) })
	s.state.IndexItems = filter(s.state.IndexItems, func(e Excerpt) bool { return live(e.Id) })
	if !live(s.state.CurrentNoteId) {
		s.state.CurrentNoteId = ""
	}
}

func (s *Store) SetActiveModule(m Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveModule = m
}

func (s *Store) SetScheduleView(v ScheduleView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ScheduleView = v
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchQuery = q
}

// OpenNote makes id the current note. Unknown ids are ignored.
func (s *Store) OpenNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.canonical(id)
	if s.noteIndex(id) < 0 {
		return false
	}
	s.state.CurrentNoteId = id
	s.state.ActiveModule = ModuleNotes
	return true
}

func (s *Store) CloseNote() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentNoteId = ""
}

// CloseNoteIfCurrent clears the current note only when it is id, following
// a placeholder to its server id.
func (s *Store) CloseNoteIfCurrent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentNoteId == "" || s.state.CurrentNoteId != s.canonical(id) {
		return false
	}
	s.state.CurrentNoteId = ""
	return true
}

func (s *Store) goAsync(fn func()) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		fn()
	}()
}

func (s *Store) notify(messages ...string) {
	for _, m := range messages {
		s.notifier.Notify(m)
	}
}

func failure(action string, err error) string {
	return fmt.Sprintf("Failed to %s: %v", action, err)
}

// discardOrphan deletes a server record whose local placeholder is gone.
func (s *Store) discardOrphan(remove func(ctx context.Context) error) {
	s.goAsync(func() {
		_ = remove(s.ctx)
	})
}

// touch returns the current time, never earlier than prev.
func (s *Store) touch(prev time.Time) time.Time {
	t := s.now()
	if t.Before(prev) {
		return prev
	}
	return t
}
