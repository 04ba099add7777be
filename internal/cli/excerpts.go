package cli

import (
	"fmt"
	"sort"

	"notecraft-be/pkg/schedule"
	"notecraft-be/pkg/store"

	"github.com/spf13/cobra"
)

// excerptKind describes the starred list or the index to the shared
// excerpt commands.
type excerptKind struct {
	use     string
	aliases []string
	noun    string
	items   func(store.State) []store.Excerpt
	create  func(s *store.Store, noteId, text string) string
	remove  func(s *store.Store, id string)
}

var starredKind = excerptKind{
	use:     "star",
	aliases: []string{"starred"},
	noun:    "starred item",
	items:   func(st store.State) []store.Excerpt { return st.Starred },
	create:  (*store.Store).CreateStarred,
	remove:  (*store.Store).DeleteStarred,
}

var indexKind = excerptKind{
	use:     "index",
	aliases: []string{"idx"},
	noun:    "index item",
	items:   func(st store.State) []store.Excerpt { return st.IndexItems },
	create:  (*store.Store).CreateIndexItem,
	remove:  (*store.Store).DeleteIndexItem,
}

func newCmdExcerpts(a *App, k excerptKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:     k.use,
		Aliases: k.aliases,
		Short:   fmt.Sprintf("Manage %ss: verbatim pieces of note text.", k.noun),
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   fmt.Sprintf("List %ss, newest first.", k.noun),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			st := a.store.Snapshot()
			items := k.items(st)
			sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

			fmt.Fprintf(a.out, "%d %s(s)\n", len(items), k.noun)
			for _, e := range items {
				fmt.Fprintf(a.out, "%s  %q  (%s)\n", short(e.Id), e.Text, schedule.NoteTitle(st.Notes, e.NoteId))
			}
			return a.finish()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <note-id> <text>",
		Short: fmt.Sprintf("Add a %s from a note.", k.noun),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			noteId, err := a.resolveNote(args[0])
			if err != nil {
				return err
			}
			id := k.create(a.store, noteId, args[1])
			if err := a.finish(); err != nil {
				return err
			}
			a.success("added %s", short(a.store.ServerID(id)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   fmt.Sprintf("Delete a %s.", k.noun),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			items := k.items(a.store.Snapshot())
			ids := make([]string, 0, len(items))
			for _, e := range items {
				ids = append(ids, e.Id)
			}
			id, err := resolve(ids, args[0])
			if err != nil {
				return err
			}
			k.remove(a.store, id)
			if err := a.finish(); err != nil {
				return err
			}
			a.success("deleted %s", short(id))
			return nil
		},
	})

	return cmd
}
