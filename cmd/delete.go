package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/busy-bee/internal/timecalc"
)

func newDeleteCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a previously recorded log entry",
		Long: `Delete the event with the given id, as shown by "view", from a day.

Ids are positions in the day's time order: deleting an event renumbers all
later events of that day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id < 0 {
				return fmt.Errorf("invalid event id %q: expected a non-negative number", args[0])
			}

			day := a.today()
			if date != "" {
				d, err := timecalc.ParseDate(date, a.now().In(a.loc))
				if err != nil {
					return err
				}
				day = d
			}

			events, err := a.store.DeleteAt(day, id)
			if err != nil {
				return failure(err)
			}
			return failure(a.reporter.Daily(cmd.OutOrStdout(), day, events))
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the event to delete (default today)")
	return cmd
}
