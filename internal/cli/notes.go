package cli

import (
	"fmt"
	"os"
	"strings"

	"notecraft-be/pkg/editor"
	"notecraft-be/pkg/schedule"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const directoryPreviewLen = 100

func newCmdNotes(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note", "n"},
		Short:   "List, write and delete notes.",
	}
	cmd.AddCommand(
		newCmdNotesList(a),
		newCmdNotesNew(a),
		newCmdNotesEdit(a),
		newCmdNotesRemove(a),
		newCmdNotesOutline(a),
	)
	return cmd
}

func newCmdNotesList(a *App) *cobra.Command {
	var (
		search string
		page   int
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the notes directory, newest first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			a.store.SetSearchQuery(search)

			st := a.store.Snapshot()
			notes, p, total := schedule.NotesDirectory(st.Notes, st.SearchQuery, page)

			noun := "notes"
			if total == 1 {
				noun = "note"
			}
			fmt.Fprintf(a.out, "%d %s (page %d of %d)\n", total, noun, p.Number, p.Total)
			for _, n := range notes {
				color.New(color.Bold).Fprintf(a.out, "%s  %s\n", short(n.Id), n.Title)
				if preview := schedule.Preview(n.Content, directoryPreviewLen); preview != "" {
					fmt.Fprintf(a.out, "          %s\n", strings.ReplaceAll(preview, "\n", " "))
				}
			}
			return a.finish()
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title or content")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	return cmd
}

// noteText reads the body from --file when given, else from --content.
func noteText(content, file string) (string, bool, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	}
	return content, content != "", nil
}

func newCmdNotesNew(a *App) *cobra.Command {
	var title, content, file string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note.",
		Example: heredoc.Doc(`
			notecraft notes new --title "Standup" --content "# Standup"
			notecraft notes new --file ./draft.md
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, hasBody, err := noteText(content, file)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			id := a.store.CreateNote()
			session, err := editor.Open(a.store, id, editor.WithSaveDelay(a.cfg.SaveDebounce))
			if err != nil {
				return err
			}
			if title != "" {
				session.Rename(title)
			}
			if hasBody {
				session.Edit(body, len(body))
			}
			session.Close()

			if err := a.finish(); err != nil {
				return err
			}
			note, _ := session.Note()
			a.success("created %s  %s", short(note.Id), note.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "note content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read content from a file")
	return cmd
}

func newCmdNotesEdit(a *App) *cobra.Command {
	var (
		title, content, file string
		appendText           bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename a note or replace its content.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, hasBody, err := noteText(content, file)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			id, err := a.resolveNote(args[0])
			if err != nil {
				return err
			}

			session, err := editor.Open(a.store, id, editor.WithSaveDelay(a.cfg.SaveDebounce))
			if err != nil {
				return err
			}
			if title != "" {
				session.Rename(title)
			}
			if hasBody {
				if appendText {
					current, _ := session.Note()
					body = strings.TrimRight(current.Content, "\n") + "\n" + body
				}
				session.Edit(body, len(body))
			}
			session.Close()

			if err := a.finish(); err != nil {
				return err
			}
			a.success("saved %s", short(id))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read content from a file")
	cmd.Flags().BoolVarP(&appendText, "append", "a", false, "append instead of replacing")
	return cmd
}

func newCmdNotesRemove(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note with its todos, starred items and index entries.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			id, err := a.resolveNote(args[0])
			if err != nil {
				return err
			}
			a.store.DeleteNote(id)
			if err := a.finish(); err != nil {
				return err
			}
			a.success("deleted %s", short(id))
			return nil
		},
	}
}

func newCmdNotesOutline(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "outline <id>",
		Short: "Show a note's headings.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			id, err := a.resolveNote(args[0])
			if err != nil {
				return err
			}
			outline, err := a.client.Outline(cmd.Context(), id)
			if err != nil {
				return err
			}
			for _, h := range outline.Headings {
				fmt.Fprintf(a.out, "%s%s  (line %d)\n", strings.Repeat("  ", h.Level-1), h.Text, h.Line)
			}
			return a.finish()
		},
	}
}
