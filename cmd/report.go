package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/busy-bee/internal/timecalc"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report [month]",
		Short: "View a monthly summary of recorded times",
		Args:  cobra.MaximumNArgs(2),
		Long: `View a monthly summary of recorded times (default the current month).

MONTH accepts e.g. 2022-02, "Feb 2022", "February 2022" or "Feb".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now().In(a.loc)
			month := now
			if len(args) > 0 {
				m, err := timecalc.ParseMonth(strings.Join(args, " "), now)
				if err != nil {
					return err
				}
				month = m
			}

			from, to := timecalc.MonthRange(month)
			events, err := a.store.ReadRange(from, to)
			if err != nil {
				return failure(err)
			}
			return failure(a.reporter.Monthly(cmd.OutOrStdout(), from, events))
		},
	}
}

func newWeeklyReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly-report [date]",
		Short: "View a summary of the calendar week containing a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now().In(a.loc)
			date := now
			if len(args) == 1 {
				d, err := timecalc.ParseDate(args[0], now)
				if err != nil {
					return err
				}
				date = d
			}

			monday, sunday := timecalc.WeekRange(date)
			events, err := a.store.ReadRange(monday, sunday)
			if err != nil {
				return failure(err)
			}
			return failure(a.reporter.Weekly(cmd.OutOrStdout(), monday, events))
		},
	}
}
