package worktime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/busy-bee/internal/model"
	"github.com/Tiliavir/busy-bee/internal/worktime"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2020, 1, day, hour, minute, 0, 0, time.UTC)
}

func in(day, hour, minute int) model.Event  { return model.NewClockIn(at(day, hour, minute)) }
func out(day, hour, minute int) model.Event { return model.NewClockOut(at(day, hour, minute)) }

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		events   []model.Event
		want     time.Duration
		complete bool
	}{
		{"empty", nil, 0, true},
		{"single pair", []model.Event{in(31, 8, 15), out(31, 16, 15)}, 8 * time.Hour, true},
		{
			"two pairs with break",
			[]model.Event{in(31, 8, 0), out(31, 12, 0), in(31, 12, 30), out(31, 17, 15)},
			8*time.Hour + 45*time.Minute,
			true,
		},
		{"lone clock-out", []model.Event{out(31, 16, 0)}, 0, false},
		{
			"two clock-ins pair only the later one",
			[]model.Event{in(31, 8, 0), in(31, 9, 0), out(31, 10, 0)},
			time.Hour,
			false,
		},
		{
			"two clock-outs",
			[]model.Event{in(31, 8, 0), out(31, 9, 0), out(31, 10, 0)},
			time.Hour,
			false,
		},
		{"trailing clock-in", []model.Event{in(31, 8, 0), out(31, 9, 0), in(31, 10, 0)}, time.Hour, false},
		{"across midnight", []model.Event{in(30, 22, 30), out(31, 1, 15)}, 2*time.Hour + 45*time.Minute, true},
		{
			"pairs spread over several days",
			[]model.Event{in(2, 9, 0), out(2, 17, 0), in(3, 9, 0), out(3, 17, 30), in(6, 10, 0), out(6, 11, 0)},
			17*time.Hour + 30*time.Minute,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := worktime.Compute(tt.events)
			assert.Equal(t, tt.want, got.Total)
			assert.Equal(t, tt.complete, got.Complete)
		})
	}
}

func TestResultHHMM(t *testing.T) {
	tests := []struct {
		total time.Duration
		hours int
		mins  int
		want  string
	}{
		{0, 0, 0, "00:00"},
		{8 * time.Hour, 8, 0, "08:00"},
		{59*time.Minute + 59*time.Second, 0, 59, "00:59"},
		{41*time.Hour + 5*time.Minute, 41, 5, "41:05"},
		{168 * time.Hour, 168, 0, "168:00"},
	}
	for _, tt := range tests {
		r := worktime.Result{Total: tt.total, Complete: true}
		assert.Equal(t, tt.hours, r.Hours(), "hours of %v", tt.total)
		assert.Equal(t, tt.mins, r.Minutes(), "minutes of %v", tt.total)
		assert.Equal(t, tt.want, r.HHMM())
	}
}
