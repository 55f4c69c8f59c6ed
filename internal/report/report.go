// Package report renders daily, weekly and monthly summaries of clock events.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/busy-bee/internal/model"
	"github.com/Tiliavir/busy-bee/internal/timecalc"
	"github.com/Tiliavir/busy-bee/internal/worktime"
)

// ErrReport wraps failures while writing a report.
var ErrReport = errors.New("could not generate report")

const (
	incompleteNotice = "Incomplete records, please update"
	unknownDuration  = "??:??"
)

// Styles decorates parts of a report. Nil fields leave text unchanged.
type Styles struct {
	Warning func(string) string
	Header  func(string) string
}

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}

// Reporter renders reports. Event times are shown and grouped in Location;
// Now decides which date is "today".
type Reporter struct {
	Location *time.Location
	Now      func() time.Time
	Styles   Styles
}

func (r *Reporter) loc() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

func (r *Reporter) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Daily writes the events of one day, numbered by position, followed by the
// day's worked time.
func (r *Reporter) Daily(w io.Writer, date time.Time, events []model.Event) error {
	pw := &printer{w: w}

	today := ""
	if timecalc.SameDay(date, r.now().In(r.loc())) {
		today = "today, "
	}
	pw.printf("%s\n", apply(r.Styles.Header, fmt.Sprintf("Records for %s%s:", today, date.Format("Jan 02, 2006"))))

	for _, se := range model.Enumerate(events) {
		pw.printf("%d | %s | %s |\n", se.ID, se.Time.In(r.loc()).Format("15:04"), kindLabel(se.Kind))
	}

	res := worktime.Compute(events)
	pw.printf("Total working time: %s hours\n", res.HHMM())
	if !res.Complete {
		pw.printf("%s\n", apply(r.Styles.Warning, incompleteNotice))
	}
	return pw.err
}

// Weekly writes one row per day of the ISO week starting at monday and the
// week's total.
func (r *Reporter) Weekly(w io.Writer, monday time.Time, events []model.Event) error {
	pw := &printer{w: w}
	header := fmt.Sprintf("Summary for calendar week %d, starting %s:", timecalc.ISOWeek(monday), monday.Format("2006-01-02"))
	pw.printf("%s\n", apply(r.Styles.Header, header))
	r.days(pw, events)
	return pw.err
}

// Monthly writes one row per day of the month containing date and the
// month's total.
func (r *Reporter) Monthly(w io.Writer, date time.Time, events []model.Event) error {
	pw := &printer{w: w}
	pw.printf("%s\n", apply(r.Styles.Header, fmt.Sprintf("Summary for %s:", date.Format("January 2006"))))
	r.days(pw, events)
	return pw.err
}

// DailyString returns the daily report as text.
func (r *Reporter) DailyString(date time.Time, events []model.Event) (string, error) {
	var sb strings.Builder
	err := r.Daily(&sb, date, events)
	return sb.String(), err
}

// WeeklyString returns the weekly report as text.
func (r *Reporter) WeeklyString(monday time.Time, events []model.Event) (string, error) {
	var sb strings.Builder
	err := r.Weekly(&sb, monday, events)
	return sb.String(), err
}

// MonthlyString returns the monthly report as text.
func (r *Reporter) MonthlyString(date time.Time, events []model.Event) (string, error) {
	var sb strings.Builder
	err := r.Monthly(&sb, date, events)
	return sb.String(), err
}

// dayGroup holds the events of one calendar date.
type dayGroup struct {
	date   time.Time
	events []model.Event
}

// groupByDay splits events by their full calendar date in loc, in ascending
// date order. Event order within a day is preserved.
func groupByDay(events []model.Event, loc *time.Location) []dayGroup {
	byKey := make(map[string]*dayGroup)
	var keys []string
	for _, ev := range events {
		local := ev.Time.In(loc)
		key := local.Format("2006-01-02")
		g, ok := byKey[key]
		if !ok {
			g = &dayGroup{date: timecalc.StartOfDay(local)}
			byKey[key] = g
			keys = append(keys, key)
		}
		g.events = append(g.events, ev)
	}
	sort.Strings(keys)

	groups := make([]dayGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, *byKey[k])
	}
	return groups
}

// days writes a row per day and the total over all events.
func (r *Reporter) days(pw *printer, events []model.Event) {
	for _, g := range groupByDay(events, r.loc()) {
		res := worktime.Compute(g.events)
		recorded := res.HHMM()
		comment := ""
		if !res.Complete {
			recorded = apply(r.Styles.Warning, unknownDuration)
			comment = apply(r.Styles.Warning, incompleteNotice)
		}
		row := fmt.Sprintf("%s | %s | %s", g.date.Format("Mon 2006-01-02"), padRight(recorded, len(unknownDuration)), comment)
		pw.printf("%s\n", strings.TrimRight(row, " "))
	}

	total := worktime.Compute(events)
	pw.printf("Total working time: %s hours\n", total.HHMM())
}

func kindLabel(k model.Kind) string {
	switch k {
	case model.ClockIn:
		return "clock in "
	case model.ClockOut:
		return "clock out"
	}
	return k.String()
}

// padRight pads s to width terminal columns, ignoring any styling escapes.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// printer stops writing after the first error and keeps it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("%w: %w", ErrReport, err)
	}
}
