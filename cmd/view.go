package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/busy-bee/internal/timecalc"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view [date]",
		Short: "View log entries for a specific day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := a.today()
			if len(args) == 1 {
				d, err := timecalc.ParseDate(args[0], a.now().In(a.loc))
				if err != nil {
					return err
				}
				day = d
			}

			events, err := a.store.ReadDay(day)
			if err != nil {
				return failure(err)
			}
			return failure(a.reporter.Daily(cmd.OutOrStdout(), day, events))
		},
	}
}
