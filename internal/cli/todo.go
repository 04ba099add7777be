package cli

import (
	"fmt"
	"time"

	"notecraft-be/pkg/outline"
	"notecraft-be/pkg/schedule"
	"notecraft-be/pkg/store"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCmdTodo(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"todos", "t"},
		Short:   "Manage todos attached to notes.",
	}
	cmd.AddCommand(
		newCmdTodoList(a),
		newCmdTodoAdd(a),
		newCmdTodoToggle(a),
		newCmdTodoRemove(a),
		newCmdTodoImport(a),
	)
	return cmd
}

// parseDeadline accepts anything dateparse understands, in local time.
func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return nil, fmt.Errorf("unrecognised date %q: %w", s, err)
	}
	return &t, nil
}

func printTodo(a *App, t store.TodoItem, notes []store.Note) {
	mark := color.New(color.FgYellow).Sprint("[ ]")
	if t.Completed {
		mark = color.New(color.FgGreen).Sprint("[x]")
	}
	line := fmt.Sprintf("%s %s  %s", mark, short(t.Id), t.Text)
	if t.Deadline != nil {
		line += color.New(color.FgCyan).Sprintf("  due %s", t.Deadline.Format("Mon Jan 2 15:04"))
	}
	fmt.Fprintf(a.out, "%s  (%s)\n", line, schedule.NoteTitle(notes, t.NoteId))
}

func newCmdTodoList(a *App) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos, open ones first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			a.store.SetActiveModule(store.ModuleSchedule)
			a.store.SetScheduleView(store.ViewTodo)

			st := a.store.Snapshot()
			todos, p := schedule.TodoList(st.Todos, page)
			pending, completed := schedule.TodoCounts(st.Todos)

			fmt.Fprintf(a.out, "%d pending, %d completed (page %d of %d)\n", pending, completed, p.Number, p.Total)
			for _, t := range todos {
				printTodo(a, t, st.Notes)
			}
			return a.finish()
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	return cmd
}

func newCmdTodoAdd(a *App) *cobra.Command {
	var due string
	cmd := &cobra.Command{
		Use:   "add <note-id> <text>",
		Short: "Add a todo to a note.",
		Example: heredoc.Doc(`
			notecraft todo add 3f2a "Book flights" --due 2026-11-02
			notecraft todo add 3f2a "Call back" --due "Nov 3 2026 4pm"
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deadline, err := parseDeadline(due)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			noteId, err := a.resolveNote(args[0])
			if err != nil {
				return err
			}

			id := a.store.CreateTodo(noteId, args[1], deadline)
			if err := a.finish(); err != nil {
				return err
			}
			a.success("added %s", short(a.store.ServerID(id)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&due, "due", "d", "", "deadline, e.g. 2026-11-02 or \"Nov 2 4pm\"")
	return cmd
}

func newCmdTodoToggle(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Flip a todo between open and completed.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			id, err := a.resolveTodo(args[0])
			if err != nil {
				return err
			}
			a.store.ToggleTodo(id)
			if err := a.finish(); err != nil {
				return err
			}
			a.success("toggled %s", short(id))
			return nil
		},
	}
}

func newCmdTodoRemove(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			id, err := a.resolveTodo(args[0])
			if err != nil {
				return err
			}
			a.store.DeleteTodo(id)
			if err := a.finish(); err != nil {
				return err
			}
			a.success("deleted %s", short(id))
			return nil
		},
	}
}

func newCmdTodoImport(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <note-id>",
		Short: "Create todos from a note's markdown task list.",
		Long: heredoc.Doc(`
			Every "- [ ]" or "- [x]" item in the note becomes a todo on that note.
			Checked items are imported as completed.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			noteId, err := a.resolveNote(args[0])
			if err != nil {
				return err
			}
			note, _ := a.store.Note(noteId)

			tasks := outline.Tasks(note.Content)
			for _, task := range tasks {
				id := a.store.CreateTodo(noteId, task.Text, nil)
				if task.Done && id != "" {
					// Queued until the create settles.
					a.store.ToggleTodo(id)
				}
			}
			if err := a.finish(); err != nil {
				return err
			}
			a.success("imported %d todo(s)", len(tasks))
			return nil
		},
	}
}
