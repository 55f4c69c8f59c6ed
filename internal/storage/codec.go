package storage

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/busy-bee/internal/model"
)

// CorruptLineError describes a line of a day file that could not be parsed.
type CorruptLineError struct {
	Path   string
	Line   int
	Reason string
}

func (e *CorruptLineError) Error() string {
	return fmt.Sprintf("corrupt event data in %s line %d: %s", e.Path, e.Line, e.Reason)
}

func (e *CorruptLineError) Unwrap() error { return ErrCorrupt }

// FormatEvent renders ev as a line of a day file: "<kind>,<RFC 3339 UTC>".
// Fractional seconds are kept so the instant reads back unchanged.
func FormatEvent(ev model.Event) string {
	return ev.Kind.Token() + "," + ev.Time.UTC().Format(time.RFC3339Nano)
}

// ParseEvent parses one non-empty line of a day file.
func ParseEvent(line string) (model.Event, error) {
	cols := strings.Split(line, ",")
	if len(cols) != 2 {
		return model.Event{}, fmt.Errorf("expected 2 columns, got %d", len(cols))
	}

	kind, err := model.ParseKind(strings.TrimSpace(cols[0]))
	if err != nil {
		return model.Event{}, err
	}

	raw := strings.TrimSpace(cols[1])
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return model.Event{}, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	return model.Event{Kind: kind, Time: t.UTC()}, nil
}

func encode(events []model.Event) []byte {
	var buf bytes.Buffer
	for _, ev := range events {
		buf.WriteString(FormatEvent(ev))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// decode parses a whole day file. Blank lines are skipped; any other line
// that does not parse fails the whole read.
func decode(path string, data []byte) ([]model.Event, error) {
	events := []model.Event{}
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, &CorruptLineError{Path: path, Line: i + 1, Reason: err.Error()}
		}
		events = append(events, ev)
	}
	return events, nil
}
