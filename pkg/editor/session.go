// Package editor binds one open note to the store: local edits, an undo
// log and a debounced save.
package editor

import (
	"errors"
	"time"

	"notecraft-be/pkg/debounce"
	"notecraft-be/pkg/history"
	"notecraft-be/pkg/store"
)

var ErrNoteNotFound = errors.New("note not found")

type Session struct {
	store   *store.Store
	noteID  string
	history *history.History
	saver   *debounce.Debouncer
}

type Option func(*config)

type config struct {
	delay time.Duration
}

// WithSaveDelay overrides the quiet period before a save is sent.
func WithSaveDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// Open starts editing noteID and makes it the current note.
func Open(s *store.Store, noteID string, opts ...Option) (*Session, error) {
	cfg := config{delay: debounce.DefaultDelay}
	for _, opt := range opts {
		opt(&cfg)
	}

	note, ok := s.Note(noteID)
	if !ok {
		return nil, ErrNoteNotFound
	}
	s.OpenNote(noteID)

	return &Session{
		store:   s,
		noteID:  noteID,
		history: history.New(history.Snapshot{Content: note.Content, Cursor: len(note.Content)}),
		saver:   debounce.New(cfg.delay),
	}, nil
}

func (e *Session) Note() (store.Note, bool) {
	return e.store.Note(e.noteID)
}

// Edit replaces the content, records it for undo and schedules a save.
func (e *Session) Edit(content string, cursor int) {
	if e.apply(store.NotePatch{Content: &content}) {
		e.history.Push(history.Snapshot{Content: content, Cursor: cursor})
	}
}

// Rename changes the title. Titles are not part of the undo log.
func (e *Session) Rename(title string) {
	e.apply(store.NotePatch{Title: &title})
}

// Undo restores the previous snapshot and returns its cursor.
func (e *Session) Undo() (int, bool) {
	snap, ok := e.history.Undo()
	if ok {
		e.apply(store.NotePatch{Content: &snap.Content})
	}
	return snap.Cursor, ok
}

func (e *Session) Redo() (int, bool) {
	snap, ok := e.history.Redo()
	if ok {
		e.apply(store.NotePatch{Content: &snap.Content})
	}
	return snap.Cursor, ok
}

func (e *Session) CanUndo() bool { return e.history.CanUndo() }
func (e *Session) CanRedo() bool { return e.history.CanRedo() }

// Close sends any pending save and ends the session. No save is issued
// after Close returns. A note opened since is left current.
func (e *Session) Close() {
	e.saver.Flush()
	e.saver.Stop()
	e.store.CloseNoteIfCurrent(e.noteID)
}

func (e *Session) apply(patch store.NotePatch) bool {
	if !e.store.EditNoteLocal(e.noteID, patch) {
		return false
	}
	e.saver.Trigger(func() { e.store.SaveNote(e.noteID) })
	return true
}
