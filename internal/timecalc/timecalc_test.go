package timecalc_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/busy-bee/internal/timecalc"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{90 * time.Second, "1m"},
		{time.Hour, "1h 0m"},
		{time.Hour + time.Minute + time.Second, "1h 1m"},
		{90 * time.Minute, "1h 30m"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDuration(tt.d)
		if got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	monday, sunday := timecalc.WeekRange(fri)

	wantMonday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	wantSunday := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)

	if !monday.Equal(wantMonday) {
		t.Errorf("WeekRange monday = %v, want %v", monday, wantMonday)
	}
	if !sunday.Equal(wantSunday) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, wantSunday)
	}
}

func TestWeekRangeSundayAndYearBoundary(t *testing.T) {
	// 2020-01-05 is a Sunday; its week starts Monday 2019-12-30.
	sun := time.Date(2020, 1, 5, 18, 0, 0, 0, time.UTC)
	monday, sunday := timecalc.WeekRange(sun)
	if want := time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC); !monday.Equal(want) {
		t.Errorf("WeekRange monday = %v, want %v", monday, want)
	}
	if want := time.Date(2020, 1, 5, 23, 59, 59, 0, time.UTC); !sunday.Equal(want) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, want)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		in        time.Time
		first     time.Time
		lastDayOf int
	}{
		{time.Date(2022, 2, 14, 9, 0, 0, 0, time.UTC), time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, tt := range tests {
		first, last := timecalc.MonthRange(tt.in)
		if !first.Equal(tt.first) {
			t.Errorf("MonthRange(%v) first = %v, want %v", tt.in, first, tt.first)
		}
		if last.Day() != tt.lastDayOf || last.Month() != tt.first.Month() || last.Hour() != 23 {
			t.Errorf("MonthRange(%v) last = %v, want day %d 23:59:59", tt.in, last, tt.lastDayOf)
		}
	}
}

func TestISOWeek(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), 9},
		{time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), 53},
		{time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC), 52},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		if got := timecalc.ISOWeek(tt.date); got != tt.want {
			t.Errorf("ISOWeek(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}
