package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/busy-bee/internal/model"
	"github.com/Tiliavir/busy-bee/internal/timecalc"
)

func newClockCmd(a *app, kind model.Kind) *cobra.Command {
	var date string

	short := "Record when you started working or came back from a break"
	if kind == model.ClockOut {
		short = "Record when you took a break or stopped working"
	}

	cmd := &cobra.Command{
		Use:   kind.Token() + " [time]",
		Short: short,
		Long: short + `.

TIME defaults to now and accepts e.g. 730, 0730, 7:30 or 17:30.
--date accepts today, yesterday, 2024-01-31, 20240131 or 240131 and
requires an explicit TIME.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := ""
			if len(args) == 1 {
				clock = args[0]
			}
			at, err := eventTime(date, clock, a.now().In(a.loc))
			if err != nil {
				return err
			}

			ev := model.Event{Kind: kind, Time: at.Round(0).UTC()}
			events, err := a.store.Append(ev)
			if err != nil {
				return failure(err)
			}
			return failure(a.reporter.Daily(cmd.OutOrStdout(), a.store.Day(at), events))
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the event (default today)")
	return cmd
}

// eventTime resolves the optional --date and TIME arguments against now.
func eventTime(date, clock string, now time.Time) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		if date != "" {
			return time.Time{}, errors.New("date specified, but no time")
		}
		return now, nil
	}

	day := timecalc.StartOfDay(now)
	if date != "" {
		d, err := timecalc.ParseDate(date, now)
		if err != nil {
			return time.Time{}, err
		}
		day = d
	}

	if strings.EqualFold(clock, "now") {
		if date == "" {
			return now, nil
		}
		return timecalc.At(day, timecalc.Clock{Hour: now.Hour(), Minute: now.Minute()}), nil
	}

	c, err := timecalc.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	at := timecalc.At(day, c)
	if at.Hour() != c.Hour || at.Minute() != c.Minute {
		return time.Time{}, fmt.Errorf("%s on %s does not exist in local time", c, day.Format("2006-01-02"))
	}
	return at, nil
}
