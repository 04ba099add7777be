package cli

import (
	"fmt"
	"sort"
	"time"

	"notecraft-be/pkg/schedule"
	"notecraft-be/pkg/store"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const weekPreviewLen = 60

func newCmdSchedule(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"cal"},
		Short:   "Calendar views over todos and notes.",
	}
	cmd.AddCommand(
		newCmdScheduleDay(a),
		newCmdScheduleWeek(a),
		newCmdScheduleMonth(a),
		newCmdScheduleUpcoming(a),
	)
	return cmd
}

// dateArg parses an optional date argument, defaulting to now.
func dateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return time.Now(), nil
	}
	t, err := dateparse.ParseLocal(args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised date %q: %w", args[0], err)
	}
	return t, nil
}

func printDay(a *App, day schedule.DayView, notes []store.Note, previewLen int) {
	header := day.Date.Format("Monday, Jan 2")
	if y, m, d := time.Now().Date(); day.Date.Year() == y && day.Date.Month() == m && day.Date.Day() == d {
		header += color.New(color.FgMagenta).Sprint("  today")
	}
	color.New(color.Bold).Fprintln(a.out, header)

	if day.Empty() {
		fmt.Fprintln(a.out, "    No activity")
		return
	}
	for _, t := range day.Todos {
		fmt.Fprint(a.out, "    ")
		printTodo(a, t, notes)
	}
	for _, n := range day.Notes {
		fmt.Fprintf(a.out, "    note %s  %s  %s\n", short(n.Id), n.Title, schedule.Preview(n.Content, previewLen))
	}
}

func newCmdScheduleDay(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Todos created or due, and notes touched, on one day.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateArg(args)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			a.store.SetActiveModule(store.ModuleSchedule)
			a.store.SetScheduleView(store.ViewCalendar)

			st := a.store.Snapshot()
			printDay(a, schedule.Day(st.Todos, st.Notes, date), st.Notes, weekPreviewLen)
			return a.finish()
		},
	}
}

func newCmdScheduleWeek(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week [date]",
		Short: "Weekly report, Sunday to Saturday.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := dateArg(args)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			a.store.SetActiveModule(store.ModuleSchedule)
			a.store.SetScheduleView(store.ViewWeekly)

			st := a.store.Snapshot()
			days := schedule.Week(st.Todos, st.Notes, ref)
			fmt.Fprintf(a.out, "Weekly report %s - %s\n\n", days[0].Date.Format("Jan 2"), days[6].Date.Format("Jan 2, 2006"))
			for _, day := range days {
				printDay(a, day, st.Notes, weekPreviewLen)
			}
			return a.finish()
		},
	}
}

func newCmdScheduleMonth(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [date]",
		Short: "Days of a month that have todos.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := dateArg(args)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			st := a.store.Snapshot()
			byDay := schedule.MonthTodos(st.Todos, ref)
			days := make([]int, 0, len(byDay))
			for d := range byDay {
				days = append(days, d)
			}
			sort.Ints(days)

			color.New(color.Bold).Fprintln(a.out, ref.Format("January 2006"))
			for _, d := range days {
				fmt.Fprintf(a.out, "%2d  %d todo(s)\n", d, len(byDay[d]))
			}
			return a.finish()
		},
	}
}

func newCmdScheduleUpcoming(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "upcoming",
		Aliases: []string{"reminders"},
		Short:   "Open todos with a deadline, soonest first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			st := a.store.Snapshot()
			upcoming := schedule.Upcoming(st.Todos)
			if len(upcoming) == 0 {
				fmt.Fprintln(a.out, "No upcoming reminders")
			}
			for _, t := range upcoming {
				printTodo(a, t, st.Notes)
			}
			return a.finish()
		},
	}
}
