package store

import "context"

// Note returns the note with the given id, following placeholder swaps.
func (s *Store) Note(id string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.noteIndex(s.canonical(id))
	if idx < 0 {
		return Note{}, false
	}
	return s.state.Notes[idx], true
}

// CreateNote adds an untitled note right away and returns its placeholder
// id. The note is removed again if the server rejects it.
func (s *Store) CreateNote() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newPlaceholder()
	now := s.now()
	s.state.Notes = append(s.state.Notes, Note{
		Id:        id,
		Title:     DefaultNoteTitle,
		CreatedAt: now,
		UpdatedAt: now,
	})

	gen := s.generation
	s.goAsync(func() {
		created, err := s.gateway.CreateNote(s.ctx)
		s.finishCreateNote(gen, id, created, err)
	})
	return id
}

func (s *Store) finishCreateNote(gen uint64, id string, created Note, err error) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.settleFailed(id)
		s.removeNoteCascade(id)
		s.mu.Unlock()
		s.notify(failure("create note", err))
		return
	}

	if s.isDeletedPlaceholder(id) {
		s.settleFailed(id)
		s.mu.Unlock()
		s.discardOrphan(func(ctx context.Context) error { return s.gateway.DeleteNote(ctx, created.Id) })
		return
	}

	if idx := s.noteIndex(id); idx >= 0 {
		// Local edits made while the create was in flight win; a queued
		// save sends them.
		local := s.state.Notes[idx]
		created.Title = local.Title
		created.Content = local.Content
		if local.UpdatedAt.After(created.UpdatedAt) {
			created.UpdatedAt = local.UpdatedAt
		}
		s.state.Notes[idx] = created
	}
	s.reparent(id, created.Id)
	if s.state.CurrentNoteId == id {
		s.state.CurrentNoteId = created.Id
	}
	s.settle(id, created.Id)
	s.mu.Unlock()
}

// EditNoteLocal changes the mirror only. Pair it with SaveNote.
func (s *Store) EditNoteLocal(id string, patch NotePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyNotePatch(s.canonical(id), patch)
}

// SaveNote sends the note's current title and content. Failures are
// reported and not rolled back.
func (s *Store) SaveNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.canonical(id)
	if s.noteIndex(id) < 0 {
		return
	}
	if ph, ok := s.placeholders[id]; ok {
		if ph.saveQueued {
			return
		}
		ph.saveQueued = true
	}

	gen := s.generation
	s.withServerID(id, func(serverID string) {
		s.mu.Lock()
		idx := s.noteIndex(serverID)
		if gen != s.generation || idx < 0 {
			s.mu.Unlock()
			return
		}
		n := s.state.Notes[idx]
		s.mu.Unlock()

		_, err := s.gateway.UpdateNote(s.ctx, serverID, NotePatch{Title: &n.Title, Content: &n.Content})
		s.reportFailure(gen, "save note", err)
	})
}

// UpdateNote merges patch into the note and sends it.
func (s *Store) UpdateNote(id string, patch NotePatch) {
	s.mu.Lock()
	id = s.canonical(id)
	if !s.applyNotePatch(id, patch) {
		s.mu.Unlock()
		return
	}
	if IsPlaceholder(id) {
		s.mu.Unlock()
		s.SaveNote(id)
		return
	}

	gen := s.generation
	s.goAsync(func() {
		_, err := s.gateway.UpdateNote(s.ctx, id, patch)
		s.reportFailure(gen, "update note", err)
	})
	s.mu.Unlock()
}

// DeleteNote removes the note and everything that belongs to it in one
// step. A failed delete is reported and the note stays gone.
func (s *Store) DeleteNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.canonical(id)
	if s.noteIndex(id) < 0 {
		return
	}
	s.removeNoteCascade(id)

	if IsPlaceholder(id) {
		s.markDeleted(id)
		return
	}

	gen := s.generation
	s.goAsync(func() {
		err := s.gateway.DeleteNote(s.ctx, id)
		s.reportFailure(gen, "delete note", err)
	})
}

func (s *Store) reportFailure(gen uint64, action string, err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	stale := gen != s.generation
	s.mu.Unlock()
	if !stale {
		s.notify(failure(action, err))
	}
}

// The helpers below expect s.mu to be held.

func (s *Store) noteIndex(id string) int {
	for i := range s.state.Notes {
		if s.state.Notes[i].Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) applyNotePatch(id string, patch NotePatch) bool {
	idx := s.noteIndex(id)
	if idx < 0 {
		return false
	}
	n := &s.state.Notes[idx]
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	n.UpdatedAt = s.touch(n.UpdatedAt)
	return true
}

// removeNoteCascade drops the note and its todos and excerpts. Dependents
// still waiting on their create are marked deleted.
func (s *Store) removeNoteCascade(noteId string) {
	s.state.Notes = filter(s.state.Notes, func(n Note) bool { return n.Id != noteId })

	s.state.Todos = filter(s.state.Todos, func(t TodoItem) bool {
		if t.NoteId != noteId {
			return true
		}
		s.markDeleted(t.Id)
		return false
	})
	keep := func(e Excerpt) bool {
		if e.NoteId != noteId {
			return true
		}
		s.markDeleted(e.Id)
		return false
	}
	s.state.Starred = filter(s.state.Starred, keep)
	s.state.IndexItems = filter(s.state.IndexItems, keep)

	if s.state.CurrentNoteId == noteId {
		s.state.CurrentNoteId = ""
	}
}

// reparent points dependents of a placeholder note at its server id.
func (s *Store) reparent(from, to string) {
	for i := range s.state.Todos {
		if s.state.Todos[i].NoteId == from {
			s.state.Todos[i].NoteId = to
		}
	}
	for i := range s.state.Starred {
		if s.state.Starred[i].NoteId == from {
			s.state.Starred[i].NoteId = to
		}
	}
	for i := range s.state.IndexItems {
		if s.state.IndexItems[i].NoteId == from {
			s.state.IndexItems[i].NoteId = to
		}
	}
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
