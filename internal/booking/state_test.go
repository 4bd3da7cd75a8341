package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	cases := map[string]State{
		"ALL":      StateAll,
		"CURRENT":  StateCurrent,
		"PAST":     StatePast,
		"FUTURE":   StateFuture,
		"WAITING":  StateWaiting,
		"REJECTED": StateRejected,
	}
	for name, want := range cases {
		got, err := ParseState(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseStateRejectsUnknownAndCaseMismatch(t *testing.T) {
	for _, name := range []string{"", "all", "Current", "DONE", " PAST"} {
		_, err := ParseState(name)
		assert.ErrorIs(t, err, ErrUnknownState, "state %q", name)
	}
}

func TestParseStateErrorText(t *testing.T) {
	_, err := ParseState("SOMETHING")
	require.Error(t, err)
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())
}

func TestClassifyTemporalStates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	f := Classify(StateAll, now)
	assert.Equal(t, Filter{}, f)

	f = Classify(StateCurrent, now)
	require.NotNil(t, f.CurrentAt)
	assert.True(t, f.CurrentAt.Equal(now))
	assert.Nil(t, f.EndBefore)
	assert.Nil(t, f.StartAfter)

	f = Classify(StatePast, now)
	require.NotNil(t, f.EndBefore)
	assert.True(t, f.EndBefore.Equal(now))

	f = Classify(StateFuture, now)
	require.NotNil(t, f.StartAfter)
	assert.True(t, f.StartAfter.Equal(now))
}

func TestClassifyStatusStates(t *testing.T) {
	now := time.Now()

	assert.Equal(t, StatusWaiting, Classify(StateWaiting, now).Status)
	assert.Equal(t, StatusRejected, Classify(StateRejected, now).Status)
}

// Every booking falls in exactly one of PAST, CURRENT, FUTURE: the filters
// use end < now, start <= now <= end and start > now, so bookings touching
// the instant land in CURRENT and nowhere else.
func TestTemporalPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	hour := time.Hour

	past := Classify(StatePast, now)
	current := Classify(StateCurrent, now)
	future := Classify(StateFuture, now)

	matches := func(f Filter, b Booking) bool {
		switch {
		case f.EndBefore != nil:
			return b.End.Before(*f.EndBefore)
		case f.StartAfter != nil:
			return b.Start.After(*f.StartAfter)
		case f.CurrentAt != nil:
			return !b.Start.After(*f.CurrentAt) && !b.End.Before(*f.CurrentAt)
		}
		return true
	}

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"well in the past", now.Add(-3 * hour), now.Add(-2 * hour)},
		{"ends exactly now", now.Add(-1 * hour), now},
		{"spans now", now.Add(-1 * hour), now.Add(1 * hour)},
		{"starts exactly now", now, now.Add(1 * hour)},
		{"well in the future", now.Add(2 * hour), now.Add(3 * hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{Start: tc.start, End: tc.end}

			count := 0
			for _, f := range []Filter{past, current, future} {
				if matches(f, b) {
					count++
				}
			}
			assert.Equal(t, 1, count, "booking must land in exactly one bucket")
		})
	}
}
