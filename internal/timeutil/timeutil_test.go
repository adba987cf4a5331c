package timeutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClockHHMMEqualsHHMMSS(t *testing.T) {
	cases := []string{"00:00", "9:30", "09:30", "23:59", "12:00"}
	for _, raw := range cases {
		short, err := ParseClock(raw)
		require.NoError(t, err)
		long, err := ParseClock(raw + ":00")
		require.NoError(t, err)
		require.Equal(t, short, long, "P3: parse(%q) must equal parse(%q:00)", raw, raw)
	}
}

func TestParseClockMalformed(t *testing.T) {
	for _, raw := range []string{"", "25:00", "10:60", "abc", "10", "10:00:00:00"} {
		_, err := ParseClock(raw)
		require.Error(t, err, "expected error for %q", raw)
		var malformed *MalformedTimeError
		require.ErrorAs(t, err, &malformed)
	}
}

func TestFormat12Hour(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"12:00": "12:00 PM",
		"09:05": "9:05 AM",
		"21:00": "9:00 PM",
		"23:59": "11:59 PM",
	}
	for raw, want := range cases {
		c, err := ParseClock(raw)
		require.NoError(t, err)
		require.Equal(t, want, c.Format12Hour())
	}
}

func TestWindowDecomposeAndSlot(t *testing.T) {
	w := Window{Days: []string{"Monday", "Tuesday"}, HoursPerDay: 3, StartHour: 8}
	require.Equal(t, 6, w.SlotsPerWeek())

	day, hour := w.Decompose(4)
	require.Equal(t, "Tuesday", day)
	require.Equal(t, 9, hour)

	require.Equal(t, 4, w.Slot(1, 9))
}

func TestWindowCrossesDayBoundary(t *testing.T) {
	w := Window{Days: []string{"Monday"}, HoursPerDay: 3, StartHour: 8}
	require.False(t, w.CrossesDayBoundary(0, 3))
	require.True(t, w.CrossesDayBoundary(1, 3))
	require.True(t, w.CrossesDayBoundary(2, 2))
}

func TestGapsMergesOverlappingBusySpans(t *testing.T) {
	windowStart := MustParseClock("06:00")
	windowEnd := MustParseClock("21:00")
	busy := []Span{
		{Start: MustParseClock("12:00"), End: MustParseClock("13:00")},
		{Start: MustParseClock("08:00"), End: MustParseClock("09:00")},
		{Start: MustParseClock("08:30"), End: MustParseClock("10:00")},
	}
	gaps := Gaps(windowStart, windowEnd, busy)
	require.Equal(t, []Span{
		{Start: MustParseClock("06:00"), End: MustParseClock("08:00")},
		{Start: MustParseClock("10:00"), End: MustParseClock("12:00")},
		{Start: MustParseClock("13:00"), End: MustParseClock("21:00")},
	}, gaps)
}

func TestGapsNoneWhenFullyBooked(t *testing.T) {
	gaps := Gaps(MustParseClock("06:00"), MustParseClock("07:00"), []Span{
		{Start: MustParseClock("05:00"), End: MustParseClock("08:00")},
	})
	require.Empty(t, gaps)
}
