package model

import (
	"fmt"
	"time"
)

// Kind distinguishes the two event types a user can record.
type Kind int

const (
	ClockIn Kind = iota
	ClockOut
)

// Token returns the persisted token for k ("clock-in" or "clock-out").
func (k Kind) Token() string {
	switch k {
	case ClockIn:
		return "clock-in"
	case ClockOut:
		return "clock-out"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) String() string {
	return k.Token()
}

// ParseKind maps a persisted token back to its Kind.
func ParseKind(token string) (Kind, error) {
	switch token {
	case "clock-in":
		return ClockIn, nil
	case "clock-out":
		return ClockOut, nil
	}
	return 0, fmt.Errorf("unknown event kind %q", token)
}

// Event is a single clock-in or clock-out. Time is always held in UTC.
type Event struct {
	Kind Kind      `json:"kind"`
	Time time.Time `json:"time"`
}

// NewClockIn returns a clock-in event at t.
func NewClockIn(t time.Time) Event {
	return Event{Kind: ClockIn, Time: t.Round(0).UTC()}
}

// NewClockOut returns a clock-out event at t.
func NewClockOut(t time.Time) Event {
	return Event{Kind: ClockOut, Time: t.Round(0).UTC()}
}

// StoredEvent pairs an event with its position in the day's time-ordered list.
// The ID is only valid until the day is modified again.
type StoredEvent struct {
	ID int `json:"id"`
	Event
}

// Enumerate assigns positional IDs to a day's events in their current order.
func Enumerate(events []Event) []StoredEvent {
	stored := make([]StoredEvent, len(events))
	for i, e := range events {
		stored[i] = StoredEvent{ID: i, Event: e}
	}
	return stored
}

// MarshalText encodes k as its persisted token.
func (k Kind) MarshalText() ([]byte, error) {
	if k != ClockIn && k != ClockOut {
		return nil, fmt.Errorf("unknown event kind %d", int(k))
	}
	return []byte(k.Token()), nil
}

// UnmarshalText decodes a persisted token.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
