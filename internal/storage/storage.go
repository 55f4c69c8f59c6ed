package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Tiliavir/busy-bee/internal/model"
)

const fileExt = ".csv"

var (
	// ErrCorrupt is returned when a day file contains a line that cannot be parsed.
	ErrCorrupt = errors.New("corrupt event data")
	// ErrEventNotFound is returned when deleting a position that does not exist.
	ErrEventNotFound = errors.New("event not found")
)

// EventNotFoundError reports a delete of a position outside the day's events.
type EventNotFoundError struct {
	Date  string
	Index int
	Count int
}

func (e *EventNotFoundError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("no event with id %d on %s: there are no events on that day", e.Index, e.Date)
	}
	return fmt.Sprintf("no event with id %d on %s: valid ids are 0 to %d", e.Index, e.Date, e.Count-1)
}

func (e *EventNotFoundError) Unwrap() error { return ErrEventNotFound }

// BaseDir returns the default data directory (~/.busy-bee).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".busy-bee"), nil
}

// Store persists events as one file per calendar day in Dir. Days are
// determined in Location.
type Store struct {
	Dir      string
	Location *time.Location
	Logger   *slog.Logger
}

func (s *Store) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

func (s *Store) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Day returns midnight of t's calendar date in the store's location.
func (s *Store) Day(t time.Time) time.Time {
	t = t.In(s.loc())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc())
}

// dayFilePath returns the path for the given date's file. Only the date
// components of day are used.
func (s *Store) dayFilePath(day time.Time) string {
	return filepath.Join(s.Dir, day.Format("2006-01-02")+fileExt)
}

// ReadDay returns the events of day sorted by time. A day without a file has
// no events; reading never creates one.
func (s *Store) ReadDay(day time.Time) ([]model.Event, error) {
	path := s.dayFilePath(day)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	events, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	sortByTime(events)
	s.logger().Debug("read day", "date", day.Format("2006-01-02"), "path", path, "events", len(events))
	return events, nil
}

// Append adds ev to the file of its day, re-sorts and rewrites the day and
// returns the resulting events.
func (s *Store) Append(ev model.Event) ([]model.Event, error) {
	day := s.Day(ev.Time)
	events, err := s.ReadDay(day)
	if err != nil {
		return nil, err
	}

	// Drop any monotonic reading so the result equals what ReadDay returns.
	ev.Time = ev.Time.Round(0).UTC()
	events = append(events, ev)
	sortByTime(events)

	if err := s.saveDay(day, events); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteAt removes the event at position index of day's time-ordered events
// and returns the remaining events. Positions of later events shift down by
// one. An index outside the day's events is reported as an
// *EventNotFoundError and nothing is written.
func (s *Store) DeleteAt(day time.Time, index int) ([]model.Event, error) {
	events, err := s.ReadDay(day)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(events) {
		return events, &EventNotFoundError{Date: day.Format("2006-01-02"), Index: index, Count: len(events)}
	}

	remaining := make([]model.Event, 0, len(events)-1)
	remaining = append(remaining, events[:index]...)
	remaining = append(remaining, events[index+1:]...)

	if err := s.saveDay(day, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// ReadRange loads all events of the days in [from, to] inclusive, ordered by
// day and then by time.
func (s *Store) ReadRange(from, to time.Time) ([]model.Event, error) {
	var events []model.Event
	for d := s.Day(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		day, err := s.ReadDay(d)
		if err != nil {
			return nil, err
		}
		events = append(events, day...)
	}
	return events, nil
}

func sortByTime(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
}

// saveDay replaces the day's file with events.
func (s *Store) saveDay(day time.Time, events []model.Event) error {
	path := s.dayFilePath(day)
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	if err := writeFileAtomic(path, encode(events)); err != nil {
		return err
	}
	s.logger().Debug("wrote day", "date", day.Format("2006-01-02"), "path", path, "events", len(events))
	return nil
}

// writeFileAtomic writes data to a temp file next to path, flushes it and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage error creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}

	// Make the rename itself durable. Not all platforms allow syncing a
	// directory, so failures here are ignored.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		d.Close()
	}
	return nil
}
