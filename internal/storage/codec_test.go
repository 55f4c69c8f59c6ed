package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/busy-bee/internal/model"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	in := []model.Event{
		{Kind: model.ClockIn, Time: time.Date(2022, 2, 1, 7, 30, 0, 0, cet)},
		{Kind: model.ClockOut, Time: time.Date(2022, 2, 1, 16, 5, 0, 0, time.UTC)},
	}

	out, err := decode("test.csv", encode(in))
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].Kind, out[i].Kind)
		assert.True(t, in[i].Time.Equal(out[i].Time))
		assert.Equal(t, time.UTC, out[i].Time.Location())
	}
}

func TestFormatEvent(t *testing.T) {
	ev := model.NewClockOut(time.Date(2020, 1, 31, 16, 15, 0, 0, time.UTC))
	assert.Equal(t, "clock-out,2020-01-31T16:15:00Z", FormatEvent(ev))
}

func TestParseEventAcceptsOffsetsAndSpaces(t *testing.T) {
	ev, err := ParseEvent(" clock-in , 2020-01-31T09:15:00+01:00 ")
	require.NoError(t, err)
	assert.Equal(t, model.ClockIn, ev.Kind)
	assert.Equal(t, time.Date(2020, 1, 31, 8, 15, 0, 0, time.UTC), ev.Time)
}

func TestRoundTripKeepsFractionalSeconds(t *testing.T) {
	ev := model.NewClockIn(time.Date(2020, 1, 31, 8, 15, 0, 700_000_000, time.UTC))

	line := FormatEvent(ev)
	assert.Equal(t, "clock-in,2020-01-31T08:15:00.7Z", line)

	parsed, err := ParseEvent(line)
	require.NoError(t, err)
	assert.Equal(t, ev, parsed)
}
