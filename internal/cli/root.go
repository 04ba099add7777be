package cli

import (
	"notecraft-be/internal/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func NewCmdRoot() *cobra.Command {
	cfg := config.LoadClient()
	a := &App{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "notecraft",
		Short: "Notes, todos and schedule from the terminal.",
		Long: heredoc.Doc(`
			notecraft talks to a notecraft server with the token issued at sign-in.
			Ids may be shortened to any unique prefix.
		`),
		Example: heredoc.Doc(`
			notecraft notes list --search meeting
			notecraft todo add 3f2a "Send agenda" --due "next friday 9am"
			notecraft schedule week
		`),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.out = cmd.OutOrStdout()
		},
	}

	cmd.PersistentFlags().StringVar(&cfg.APIURL, "url", cfg.APIURL, "server base URL (NOTECRAFT_URL)")
	cmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "bearer token (NOTECRAFT_TOKEN)")
	cmd.PersistentFlags().DurationVar(&cfg.SaveDebounce, "save-delay", cfg.SaveDebounce, "quiet period before an edit is saved")

	cmd.AddCommand(
		newCmdWhoami(a),
		newCmdNotes(a),
		newCmdTodo(a),
		newCmdExcerpts(a, starredKind),
		newCmdExcerpts(a, indexKind),
		newCmdSchedule(a),
	)

	return cmd
}

func newCmdWhoami(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			me, err := a.client.Me(cmd.Context())
			if err != nil {
				return err
			}
			a.success("%s <%s>", me.Name, me.Email)
			return a.finish()
		},
	}
}
