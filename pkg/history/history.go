// Package history keeps the linear undo log of one open note.
package history

// MaxEntries bounds the log; the oldest snapshots fall off first.
const MaxEntries = 50

type Snapshot struct {
	Content string
	Cursor  int
}

// History is not safe for concurrent use. An editor session owns it.
type History struct {
	entries []Snapshot
	index   int
	limit   int
}

func New(initial Snapshot) *History {
	return NewWithLimit(initial, MaxEntries)
}

func NewWithLimit(initial Snapshot, limit int) *History {
	if limit < 1 {
		limit = MaxEntries
	}
	return &History{
		entries: []Snapshot{initial},
		limit:   limit,
	}
}

// Push drops everything after the current index, appends s and trims the
// log to the newest limit entries.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries[:h.index+1], s)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]Snapshot(nil), h.entries[over:]...)
	}
	h.index = len(h.entries) - 1
}

func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.index--
	return h.entries[h.index], true
}

func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.index++
	return h.entries[h.index], true
}

func (h *History) CanUndo() bool {
	return h.index > 0
}

func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}

func (h *History) Current() Snapshot {
	return h.entries[h.index]
}

func (h *History) Len() int {
	return len(h.entries)
}
