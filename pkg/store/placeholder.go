package store

import (
	"strings"

	"github.com/google/uuid"
)

const placeholderPrefix = "tmp-"

// IsPlaceholder reports whether id was made up locally for a create that
// the server has not confirmed yet.
func IsPlaceholder(id string) bool {
	return strings.HasPrefix(id, placeholderPrefix)
}

func newPlaceholderID() string {
	return placeholderPrefix + uuid.NewString()
}

// placeholder tracks one optimistic create until the server answers.
type placeholder struct {
	serverID string
	settled  bool
	failed   bool
	// deleted is set when the item is removed locally before its create
	// settles. A create that then succeeds leaves an orphan to clean up.
	deleted    bool
	saveQueued bool
	waiters    []func(serverID string)
}

// All methods below expect s.mu to be held.

func (s *Store) newPlaceholder() string {
	id := s.newID()
	s.placeholders[id] = &placeholder{}
	return id
}

// canonical maps a settled placeholder to its server id.
func (s *Store) canonical(id string) string {
	if ph, ok := s.placeholders[id]; ok && ph.settled && !ph.failed {
		return ph.serverID
	}
	return id
}

// withServerID runs fn asynchronously once id has a server id. Work queued
// on a create that fails or is deleted is dropped.
func (s *Store) withServerID(id string, fn func(serverID string)) {
	if !IsPlaceholder(id) {
		s.goAsync(func() { fn(id) })
		return
	}

	ph, ok := s.placeholders[id]
	switch {
	case !ok, ph.failed, ph.deleted:
		return
	case ph.settled:
		serverID := ph.serverID
		s.goAsync(func() { fn(serverID) })
	default:
		ph.waiters = append(ph.waiters, fn)
	}
}

// pending reports whether id is a placeholder of the current session whose
// create has not settled.
func (s *Store) pending(id string) bool {
	ph, ok := s.placeholders[id]
	return ok && !ph.settled
}

func (s *Store) isDeletedPlaceholder(id string) bool {
	ph, ok := s.placeholders[id]
	return ok && ph.deleted
}

func (s *Store) markDeleted(id string) {
	if ph, ok := s.placeholders[id]; ok && !ph.settled {
		ph.deleted = true
		ph.waiters = nil
	}
}

func (s *Store) settleFailed(id string) {
	if ph, ok := s.placeholders[id]; ok {
		ph.settled = true
		ph.failed = true
		ph.waiters = nil
	}
}

// settle records the server id and starts the queued work.
func (s *Store) settle(id, serverID string) {
	ph, ok := s.placeholders[id]
	if !ok {
		return
	}
	ph.settled = true
	ph.serverID = serverID

	waiters := ph.waiters
	ph.waiters = nil
	for _, w := range waiters {
		w := w
		s.goAsync(func() { w(serverID) })
	}
}
