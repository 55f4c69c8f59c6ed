package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/busy-bee/internal/model"
	"github.com/Tiliavir/busy-bee/internal/timecalc"
)

// exportRow is one exported event with its day and positional id.
type exportRow struct {
	Date string `json:"date"`
	model.StoredEvent
}

func newExportCmd(a *app) *cobra.Command {
	var (
		week   string
		month  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded events to stdout",
		Long: `Export the events of a calendar week (default the current one) or a month.

Formats: csv (default) or json. Ids are the positions shown by "view".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if week != "" && month != "" {
				return fmt.Errorf("--week and --month are mutually exclusive")
			}
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown format %q: expected csv or json", format)
			}

			now := a.now().In(a.loc)
			var from, to time.Time
			switch {
			case month != "":
				m, err := timecalc.ParseMonth(month, now)
				if err != nil {
					return err
				}
				from, to = timecalc.MonthRange(m)
			case week != "":
				d, err := timecalc.ParseDate(week, now)
				if err != nil {
					return err
				}
				from, to = timecalc.WeekRange(d)
			default:
				from, to = timecalc.WeekRange(now)
			}

			rows, err := a.exportRows(from, to)
			if err != nil {
				return failure(err)
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return failure(writeJSON(out, rows))
			}
			return failure(writeCSV(out, rows))
		},
	}
	cmd.Flags().StringVar(&week, "week", "", "Export the calendar week containing this date")
	cmd.Flags().StringVar(&month, "month", "", "Export this month, e.g. 2022-02 or \"Feb 2022\"")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv, json")
	return cmd
}

// exportRows reads day by day so ids match what "view" shows for each day.
func (a *app) exportRows(from, to time.Time) ([]exportRow, error) {
	rows := []exportRow{}
	for d := a.store.Day(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		events, err := a.store.ReadDay(d)
		if err != nil {
			return nil, err
		}
		for _, se := range model.Enumerate(events) {
			rows = append(rows, exportRow{Date: d.Format("2006-01-02"), StoredEvent: se})
		}
	}
	return rows, nil
}

func writeJSON(w io.Writer, rows []exportRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, rows []exportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "id", "kind", "time"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Date,
			fmt.Sprint(r.ID),
			r.Kind.Token(),
			r.Time.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
