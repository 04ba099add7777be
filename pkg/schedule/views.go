// Package schedule derives the directory, todo and calendar views from a
// store snapshot. Nothing here talks to the server.
package schedule

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"notecraft-be/pkg/store"
)

// UnknownNoteTitle labels items whose note is not in the mirror.
const UnknownNoteTitle = "Unknown note"

// FilterNotes keeps notes whose title or content contains query, ignoring
// case. An empty query keeps everything.
func FilterNotes(notes []store.Note, query string) []store.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]store.Note, 0, len(notes))
	for _, n := range notes {
		if q == "" ||
			strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

// NotesDirectory filters, sorts newest first and paginates notes.
func NotesDirectory(notes []store.Note, query string, page int) ([]store.Note, Page, int) {
	filtered := FilterNotes(notes, query)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	items, p := PageOf(filtered, NotesPageSize, page)
	return items, p, len(filtered)
}

// TodoList sorts incomplete todos first, then newest first, and paginates.
func TodoList(todos []store.TodoItem, page int) ([]store.TodoItem, Page) {
	sorted := append([]store.TodoItem(nil), todos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Completed != sorted[j].Completed {
			return !sorted[i].Completed
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return PageOf(sorted, TodoPageSize, page)
}

func TodoCounts(todos []store.TodoItem) (pending, completed int) {
	for _, t := range todos {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}

type DayView struct {
	Date  time.Time
	Todos []store.TodoItem
	Notes []store.Note
}

func (d DayView) Empty() bool {
	return len(d.Todos) == 0 && len(d.Notes) == 0
}

// Day collects todos created or due on date and notes created or updated
// on date, in date's location.
func Day(todos []store.TodoItem, notes []store.Note, date time.Time) DayView {
	v := DayView{Date: startOfDay(date)}
	for _, t := range todos {
		if sameDay(t.CreatedAt, date) || (t.Deadline != nil && sameDay(*t.Deadline, date)) {
			v.Todos = append(v.Todos, t)
		}
	}
	for _, n := range notes {
		if sameDay(n.CreatedAt, date) || sameDay(n.UpdatedAt, date) {
			v.Notes = append(v.Notes, n)
		}
	}
	return v
}

// MonthTodos groups todos created or due in month by day of month. A todo
// created and due on different days of the month appears under both.
func MonthTodos(todos []store.TodoItem, month time.Time) map[int][]store.TodoItem {
	out := make(map[int][]store.TodoItem)
	loc := month.Location()
	for _, t := range todos {
		days := map[int]bool{}
		if c := t.CreatedAt.In(loc); sameMonth(c, month) {
			days[c.Day()] = true
		}
		if t.Deadline != nil {
			if d := t.Deadline.In(loc); sameMonth(d, month) {
				days[d.Day()] = true
			}
		}
		for day := range days {
			out[day] = append(out[day], t)
		}
	}
	return out
}

// Upcoming lists incomplete todos with a deadline, soonest first.
func Upcoming(todos []store.TodoItem) []store.TodoItem {
	var out []store.TodoItem
	for _, t := range todos {
		if t.Deadline != nil && !t.Completed {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.Before(*out[j].Deadline)
	})
	return out
}

// Week returns the seven days, Sunday first, of the week containing ref.
func Week(todos []store.TodoItem, notes []store.Note, ref time.Time) []DayView {
	start := startOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	days := make([]DayView, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, Day(todos, notes, start.AddDate(0, 0, i)))
	}
	return days
}

func NoteTitle(notes []store.Note, id string) string {
	for _, n := range notes {
		if n.Id == id {
			return n.Title
		}
	}
	return UnknownNoteTitle
}

var headingMarker = regexp.MustCompile(`(?m)^#+ `)

// Preview strips heading markers and keeps the first n runes.
func Preview(content string, n int) string {
	plain := headingMarker.ReplaceAllString(content, "")
	r := []rune(plain)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, ref time.Time) bool {
	a = a.In(ref.Location())
	ay, am, ad := a.Date()
	ry, rm, rd := ref.Date()
	return ay == ry && am == rm && ad == rd
}

func sameMonth(a, ref time.Time) bool {
	return a.Year() == ref.Year() && a.Month() == ref.Month()
}
