// Package worktime folds a time-ordered sequence of clock events into the
// amount of time worked.
package worktime

import (
	"fmt"
	"time"

	"github.com/Tiliavir/busy-bee/internal/model"
)

// TrailingClockInIncomplete reports whether a clock-in that is still open when
// the sequence ends marks the result as incomplete.
const TrailingClockInIncomplete = true

// Result is the worked time of a sequence of events.
type Result struct {
	Total    time.Duration
	Complete bool
}

// Hours returns the whole hours of the total.
func (r Result) Hours() int {
	return int(r.Total / time.Hour)
}

// Minutes returns the minutes remaining after Hours, in 0..59.
func (r Result) Minutes() int {
	return int(r.Total%time.Hour) / int(time.Minute)
}

// HHMM formats the total as zero-padded hours and minutes, e.g. "08:00".
// Hours are not wrapped at 24.
func (r Result) HHMM() string {
	return fmt.Sprintf("%02d:%02d", r.Hours(), r.Minutes())
}

// Compute scans events in order and sums every clock-in immediately followed
// by a clock-out. The events must already be sorted ascending by time.
//
// A clock-out without an open clock-in, a clock-in replacing an open one, and
// (per TrailingClockInIncomplete) a clock-in left open at the end all make the
// result incomplete. Only the later of two consecutive clock-ins can be paired.
func Compute(events []model.Event) Result {
	res := Result{Complete: true}
	var open *model.Event

	for i := range events {
		ev := &events[i]
		switch ev.Kind {
		case model.ClockIn:
			if open != nil {
				res.Complete = false
			}
			open = ev
		case model.ClockOut:
			if open == nil {
				res.Complete = false
				continue
			}
			if d := ev.Time.Sub(open.Time); d > 0 {
				res.Total += d
			}
			open = nil
		}
	}

	if open != nil && TrailingClockInIncomplete {
		res.Complete = false
	}
	return res
}
