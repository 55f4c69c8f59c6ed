package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/busy-bee/internal/model"
	"github.com/Tiliavir/busy-bee/internal/timecalc"
	"github.com/Tiliavir/busy-bee/internal/worktime"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether you are clocked in and today's working time so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			events, err := a.store.ReadDay(a.today())
			if err != nil {
				return failure(err)
			}

			out := cmd.OutOrStdout()
			if n := len(events); n > 0 && events[n-1].Kind == model.ClockIn && !events[n-1].Time.After(now) {
				since := events[n-1].Time
				fmt.Fprintln(out, "Clocked in:")
				fmt.Fprintf(out, "  Since: %s\n", since.In(a.loc).Format("15:04"))
				fmt.Fprintf(out, "  Elapsed: %s\n", timecalc.FormatDuration(now.Sub(since)))

				// Count the running stretch as if clocking out now.
				running := append(append([]model.Event{}, events...), model.NewClockOut(now))
				res := worktime.Compute(running)
				fmt.Fprintf(out, "Today: %s worked so far.\n", res.HHMM())
				if !res.Complete {
					fmt.Fprintln(out, "Incomplete records today, see \"busy-bee view\".")
				}
				return nil
			}

			res := worktime.Compute(events)
			fmt.Fprintln(out, "Not clocked in.")
			fmt.Fprintf(out, "Today: %s worked.\n", res.HHMM())
			if !res.Complete {
				fmt.Fprintln(out, "Incomplete records today, see \"busy-bee view\".")
			}
			return nil
		},
	}
}
