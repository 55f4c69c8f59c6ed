package timecalc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRe  = regexp.MustCompile(`^(\d{2}|\d{4})-?(\d{2})-?(\d{2})$`)
	clockRe = regexp.MustCompile(`^(\d{1,2}):?(\d{2})$`)
	monthRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

// Clock is a time of day without a date.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseDate parses "today", "yesterday", "2024-01-31", "20240131", "240131"
// or "24-01-31". The result is midnight in now's location.
func ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "today":
		return StartOfDay(now), nil
	case "yesterday":
		return StartOfDay(now.AddDate(0, 0, -1)), nil
	}

	m := dateRe.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, fmt.Errorf("unknown date format %q; try e.g. 2024-01-31, 20240131, 240131", value)
	}
	year, _ := strconv.Atoi(m[1])
	if year < 100 {
		year += 2000
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, fmt.Errorf("%04d-%02d-%02d is not a valid date", year, month, day)
	}
	return d, nil
}

// ParseClock parses a time of day such as "730", "0730", "7:30" or "17:30".
func ParseClock(value string) (Clock, error) {
	value = strings.TrimSpace(value)
	m := clockRe.FindStringSubmatch(value)
	if m == nil {
		return Clock{}, fmt.Errorf("unknown time format %q; try e.g. 730, 0730, 07:30", value)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return Clock{}, fmt.Errorf("%s:%s is not a valid time", m[1], m[2])
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// ParseMonth parses "2022-02", "Feb 2022", "February 2022" or a bare month
// name ("Feb") meaning that month of now's year. The result is the first of
// the month in now's location.
func ParseMonth(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if m := monthRe.FindStringSubmatch(value); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("%q is not a valid month", value)
		}
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location()), nil
	}

	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return time.Time{}, fmt.Errorf("unknown month format %q; try e.g. 2022-02, Feb 2022", value)
	}
	month, ok := monthByName(fields[0])
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q", fields[0])
	}
	year := now.Year()
	if len(fields) == 2 {
		y, err := strconv.Atoi(fields[1])
		if err != nil || y < 1 {
			return time.Time{}, fmt.Errorf("invalid year %q", fields[1])
		}
		year = y
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()), nil
}

func monthByName(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	if len(name) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if strings.HasPrefix(full, name) {
			return m, true
		}
	}
	return 0, false
}

// At combines the date of day with clock in day's location.
func At(day time.Time, clock Clock) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, day.Location())
}
