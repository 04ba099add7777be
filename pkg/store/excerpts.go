package store

import "context"

// excerptFamily binds the shared excerpt logic to either the starred list
// or the index.
type excerptFamily struct {
	noun   string
	items  func(*State) *[]Excerpt
	create func(ctx context.Context, noteId, text string) (Excerpt, error)
	remove func(ctx context.Context, id string) error
}

func (s *Store) starred() excerptFamily {
	return excerptFamily{
		noun:   "starred item",
		items:  func(st *State) *[]Excerpt { return &st.Starred },
		create: s.gateway.CreateStarred,
		remove: s.gateway.DeleteStarred,
	}
}

func (s *Store) index() excerptFamily {
	return excerptFamily{
		noun:   "index item",
		items:  func(st *State) *[]Excerpt { return &st.IndexItems },
		create: s.gateway.CreateIndexItem,
		remove: s.gateway.DeleteIndexItem,
	}
}

// CreateStarred stars a verbatim piece of a note's text.
func (s *Store) CreateStarred(noteId, text string) string {
	return s.createExcerpt(s.starred(), noteId, text)
}

func (s *Store) DeleteStarred(id string) {
	s.deleteExcerpt(s.starred(), id)
}

// CreateIndexItem adds a verbatim piece of a note's text to the index.
func (s *Store) CreateIndexItem(noteId, text string) string {
	return s.createExcerpt(s.index(), noteId, text)
}

func (s *Store) DeleteIndexItem(id string) {
	s.deleteExcerpt(s.index(), id)
}

func (s *Store) createExcerpt(f excerptFamily, noteId, text string) string {
	s.mu.Lock()
	noteId = s.canonical(noteId)
	if s.noteIndex(noteId) < 0 {
		s.mu.Unlock()
		s.notify(failure("create "+f.noun, ErrNoteNotFound))
		return ""
	}

	id := s.newPlaceholder()
	items := f.items(&s.state)
	*items = append(*items, Excerpt{Id: id, NoteId: noteId, Text: text, CreatedAt: s.now()})

	gen := s.generation
	s.withServerID(noteId, func(serverNoteID string) {
		s.mu.Lock()
		if gen != s.generation || s.isDeletedPlaceholder(id) {
			s.settleFailed(id)
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		created, err := f.create(s.ctx, serverNoteID, text)
		s.finishCreateExcerpt(f, gen, id, created, err)
	})
	s.mu.Unlock()
	return id
}

func (s *Store) finishCreateExcerpt(f excerptFamily, gen uint64, id string, created Excerpt, err error) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.settleFailed(id)
		removeExcerpt(f.items(&s.state), id)
		s.mu.Unlock()
		s.notify(failure("create "+f.noun, err))
		return
	}

	if s.isDeletedPlaceholder(id) {
		s.settleFailed(id)
		s.mu.Unlock()
		s.discardOrphan(func(ctx context.Context) error { return f.remove(ctx, created.Id) })
		return
	}

	items := *f.items(&s.state)
	for i := range items {
		if items[i].Id == id {
			items[i] = created
			break
		}
	}
	s.settle(id, created.Id)
	s.mu.Unlock()
}

func (s *Store) deleteExcerpt(f excerptFamily, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.canonical(id)
	if !removeExcerpt(f.items(&s.state), id) {
		return
	}
	if IsPlaceholder(id) {
		s.markDeleted(id)
		return
	}

	gen := s.generation
	s.goAsync(func() {
		err := f.remove(s.ctx, id)
		s.reportFailure(gen, "delete "+f.noun, err)
	})
}

func removeExcerpt(items *[]Excerpt, id string) bool {
	before := len(*items)
	*items = filter(*items, func(e Excerpt) bool { return e.Id != id })
	return len(*items) != before
}
