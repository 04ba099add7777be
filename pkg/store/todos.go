package store

import (
	"context"
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

// CreateTodo adds a todo under noteId right away and returns its
// placeholder id, or "" when the note is not in the mirror.
func (s *Store) CreateTodo(noteId, text string, deadline *time.Time) string {
	s.mu.Lock()
	noteId = s.canonical(noteId)
	if s.noteIndex(noteId) < 0 {
		s.mu.Unlock()
		s.notify(failure("create todo", ErrNoteNotFound))
		return ""
	}

	id := s.newPlaceholder()
	s.state.Todos = append(s.state.Todos, TodoItem{
		Id:        id,
		NoteId:    noteId,
		Text:      text,
		Deadline:  deadline,
		CreatedAt: s.now(),
	})

	gen := s.generation
	s.withServerID(noteId, func(serverNoteID string) {
		s.mu.Lock()
		if gen != s.generation || s.isDeletedPlaceholder(id) {
			s.settleFailed(id)
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		created, err := s.gateway.CreateTodo(s.ctx, serverNoteID, text, deadline)
		s.finishCreateTodo(gen, id, created, err)
	})
	s.mu.Unlock()
	return id
}

func (s *Store) finishCreateTodo(gen uint64, id string, created TodoItem, err error) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.settleFailed(id)
		s.removeTodo(id)
		s.mu.Unlock()
		s.notify(failure("create todo", err))
		return
	}

	if s.isDeletedPlaceholder(id) {
		s.settleFailed(id)
		s.mu.Unlock()
		s.discardOrphan(func(ctx context.Context) error { return s.gateway.DeleteTodo(ctx, created.Id) })
		return
	}

	if idx := s.todoIndex(id); idx >= 0 {
		// A toggle made while the create was in flight is queued and
		// will be sent.
		created.Completed = s.state.Todos[idx].Completed
		s.state.Todos[idx] = created
	}
	s.settle(id, created.Id)
	s.mu.Unlock()
}

// ToggleTodo flips the completed flag. If the server rejects the change
// the flag goes back to its previous value.
func (s *Store) ToggleTodo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.canonical(id)
	idx := s.todoIndex(id)
	if idx < 0 {
		return
	}
	previous := s.state.Todos[idx].Completed
	s.state.Todos[idx].Completed = !previous

	gen := s.generation
	s.withServerID(id, func(serverID string) {
		_, err := s.gateway.ToggleTodo(s.ctx, serverID, !previous)
		if err == nil {
			return
		}

		s.mu.Lock()
		if gen != s.generation {
			s.mu.Unlock()
			return
		}
		if i := s.todoIndex(serverID); i >= 0 {
			s.state.Todos[i].Completed = previous
		}
		s.mu.Unlock()
		s.notify(failure("update todo", err))
	})
}

// DeleteTodo removes the todo. A failed delete is reported only.
func (s *Store) DeleteTodo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.canonical(id)
	if !s.removeTodo(id) {
		return
	}
	if IsPlaceholder(id) {
		s.markDeleted(id)
		return
	}

	gen := s.generation
	s.goAsync(func() {
		err := s.gateway.DeleteTodo(s.ctx, id)
		s.reportFailure(gen, "delete todo", err)
	})
}

func (s *Store) todoIndex(id string) int {
	for i := range s.state.Todos {
		if s.state.Todos[i].Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeTodo(id string) bool {
	before := len(s.state.Todos)
	s.state.Todos = filter(s.state.Todos, func(t TodoItem) bool { return t.Id != id })
	return len(s.state.Todos) != before
}
