// SPDX-License-Identifier: ice License 1.0

package time

import (
	"testing"
	stdlibtime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice-blockchain/timestamp/terror"
)

func TestParseFrame(t *testing.T) {
	t.Parallel()
	for name, expected := range map[string]Frame{
		"second": FrameSecond, "minutes": FrameMinute, "Hour": FrameHour, "days": FrameDay,
		"week": FrameWeek, "months": FrameMonth, "quarter": FrameQuarter, "years": FrameYear,
	} {
		frame, err := ParseFrame(name)
		require.NoError(t, err)
		assert.Equal(t, expected, frame)
	}
	_, err := ParseFrame("fortnight")
	require.ErrorIs(t, err, terror.ErrUnsupportedFrame)
	assert.Equal(t, "quarter", FrameQuarter.String())
	assert.Equal(t, "unknown", Frame(0).String())
	_, err = MustNew(2024, 1, 1, 0, 0, 0, 0, nil).Floor(Frame(42))
	require.ErrorIs(t, err, terror.ErrUnsupportedFrame)
}

func TestParseBounds(t *testing.T) {
	t.Parallel()
	for _, bounds := range []string{"()", "(]", "[)", "[]"} {
		parsed, err := ParseBounds(bounds)
		require.NoError(t, err)
		assert.Equal(t, Bounds(bounds), parsed)
	}
	for _, bounds := range []string{"", "[", "[x", "(((", "]["} {
		_, err := ParseBounds(bounds)
		require.ErrorIs(t, err, terror.ErrInvalidBounds)
	}
}

func TestFloor(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 12, 15, 34, 56, 789, "UTC")
	for frame, expected := range map[Frame]Instant{
		FrameSecond:  MustNew(2024, 6, 12, 15, 34, 56, 0, "UTC"),
		FrameMinute:  MustNew(2024, 6, 12, 15, 34, 0, 0, "UTC"),
		FrameHour:    MustNew(2024, 6, 12, 15, 0, 0, 0, "UTC"),
		FrameDay:     MustNew(2024, 6, 12, 0, 0, 0, 0, "UTC"),
		FrameWeek:    MustNew(2024, 6, 10, 0, 0, 0, 0, "UTC"),
		FrameMonth:   MustNew(2024, 6, 1, 0, 0, 0, 0, "UTC"),
		FrameQuarter: MustNew(2024, 4, 1, 0, 0, 0, 0, "UTC"),
		FrameYear:    MustNew(2024, 1, 1, 0, 0, 0, 0, "UTC"),
	} {
		floor, err := instant.Floor(frame)
		require.NoError(t, err)
		assert.Equal(t, expected, floor, frame.String())
	}
	floor, err := MustNew(2024, 12, 31, 23, 0, 0, 0, "UTC").Floor(FrameQuarter)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2024, 10, 1, 0, 0, 0, 0, "UTC"), floor)
	floor, err = MustNew(2024, 1, 1, 12, 0, 0, 0, "UTC").Floor(FrameWeek)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2024, 1, 1, 0, 0, 0, 0, "UTC"), floor)
	floor, err = MustNew(2024, 1, 7, 12, 0, 0, 0, "UTC").Floor(FrameWeek)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2024, 1, 1, 0, 0, 0, 0, "UTC"), floor)
}

func TestCeil(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 2, 12, 15, 34, 56, 789, "UTC")
	for frame, expected := range map[Frame]Instant{
		FrameSecond:  MustNew(2024, 2, 12, 15, 34, 56, 999999, "UTC"),
		FrameHour:    MustNew(2024, 2, 12, 15, 59, 59, 999999, "UTC"),
		FrameDay:     MustNew(2024, 2, 12, 23, 59, 59, 999999, "UTC"),
		FrameWeek:    MustNew(2024, 2, 18, 23, 59, 59, 999999, "UTC"),
		FrameMonth:   MustNew(2024, 2, 29, 23, 59, 59, 999999, "UTC"),
		FrameQuarter: MustNew(2024, 3, 31, 23, 59, 59, 999999, "UTC"),
		FrameYear:    MustNew(2024, 12, 31, 23, 59, 59, 999999, "UTC"),
	} {
		ceil, err := instant.Ceil(frame, 1)
		require.NoError(t, err)
		assert.Equal(t, expected, ceil, frame.String())
	}
	ceil, err := instant.Ceil(FrameMonth, 3)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2024, 4, 30, 23, 59, 59, 999999, "UTC"), ceil)
	ceil, err = instant.Ceil(FrameHour, 2)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2024, 2, 12, 16, 59, 59, 999999, "UTC"), ceil)
	_, err = instant.Ceil(FrameDay, 0)
	require.ErrorIs(t, err, terror.ErrInvalidInterval)
}

func TestFloorProperties(t *testing.T) {
	t.Parallel()
	instants := []Instant{
		MustNew(2024, 6, 12, 15, 34, 56, 789, "UTC"),
		MustNew(2024, 2, 29, 0, 0, 0, 0, "Asia/Kolkata"),
		MustNew(2024, 3, 10, 12, 0, 0, 0, "America/New_York"),
		MustNew(2024, 11, 3, 1, 30, 0, 0, "America/New_York"),
		MustNew(2000, 12, 31, 23, 59, 59, 999999, "-03:30"),
	}
	for _, instant := range instants {
		for frame := FrameSecond; frame <= FrameYear; frame++ {
			floor, err := instant.Floor(frame)
			require.NoError(t, err)
			again, err := floor.Floor(frame)
			require.NoError(t, err)
			assert.True(t, again.Equal(floor), "%v %v", instant, frame)
			ceil, err := instant.Ceil(frame, 1)
			require.NoError(t, err)
			assert.False(t, instant.Before(floor), "%v %v", instant, frame)
			assert.False(t, instant.After(ceil), "%v %v", instant, frame)
		}
	}
}

func TestSpan(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 12, 15, 34, 56, 789, "UTC")
	midnight, nextMidnight := MustNew(2024, 6, 12, 0, 0, 0, 0, "UTC"), MustNew(2024, 6, 13, 0, 0, 0, 0, "UTC")
	for bounds, expected := range map[Bounds]Span{
		ClosedOpen: {Floor: midnight, Ceil: MustNew(2024, 6, 12, 23, 59, 59, 999999, "UTC")},
		Closed:     {Floor: midnight, Ceil: nextMidnight},
		Open:       {Floor: MustNew(2024, 6, 12, 0, 0, 0, 1, "UTC"), Ceil: MustNew(2024, 6, 12, 23, 59, 59, 999999, "UTC")},
		OpenClosed: {Floor: MustNew(2024, 6, 12, 0, 0, 0, 1, "UTC"), Ceil: nextMidnight},
	} {
		span, err := instant.Span(FrameDay, 1, bounds, false)
		require.NoError(t, err)
		assert.Equal(t, expected, span, string(bounds))
		assert.True(t, span.Contains(instant))
	}
	span, err := instant.Span(FrameDay, 3, ClosedOpen, true)
	require.NoError(t, err)
	assert.Equal(t, Span{Floor: instant, Ceil: MustNew(2024, 6, 15, 15, 34, 56, 788, "UTC")}, span)
	assert.False(t, span.Contains(MustNew(2024, 6, 15, 15, 34, 56, 789, "UTC")))
	_, err = instant.Span(FrameDay, 1, Bounds("<>"), false)
	require.ErrorIs(t, err, terror.ErrInvalidBounds)
}

func TestSpanOverDSTTransition(t *testing.T) {
	t.Parallel()
	span, err := MustNew(2024, 3, 10, 12, 0, 0, 0, "America/New_York").Span(FrameDay, 1, Closed, false)
	require.NoError(t, err)
	assert.Equal(t, -5*stdlibtime.Hour, span.Floor.UTCOffset())
	assert.Equal(t, -4*stdlibtime.Hour, span.Ceil.UTCOffset())
	assert.Equal(t, 23*stdlibtime.Hour, span.Duration())
	span, err = MustNew(2024, 11, 3, 12, 0, 0, 0, "America/New_York").Span(FrameDay, 1, Closed, false)
	require.NoError(t, err)
	assert.Equal(t, 25*stdlibtime.Hour, span.Duration())
}

func TestShift(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		from     Instant
		delta    Delta
		expected Instant
	}{
		{MustNew(2024, 1, 31, 10, 0, 0, 0, "UTC"), Delta{Months: 1}, MustNew(2024, 2, 29, 10, 0, 0, 0, "UTC")},
		{MustNew(2024, 2, 29, 10, 0, 0, 0, "UTC"), Delta{Years: 1}, MustNew(2025, 2, 28, 10, 0, 0, 0, "UTC")},
		{MustNew(2024, 3, 31, 10, 0, 0, 0, "UTC"), Delta{Months: -1}, MustNew(2024, 2, 29, 10, 0, 0, 0, "UTC")},
		{MustNew(2024, 1, 15, 0, 0, 0, 0, "UTC"), Delta{Months: -13}, MustNew(2022, 12, 15, 0, 0, 0, 0, "UTC")},
		{MustNew(2024, 11, 30, 0, 0, 0, 0, "UTC"), Delta{Quarters: 1}, MustNew(2025, 2, 28, 0, 0, 0, 0, "UTC")},
		{MustNew(2024, 12, 31, 23, 0, 0, 0, "UTC"), Delta{Hours: 2}, MustNew(2025, 1, 1, 1, 0, 0, 0, "UTC")},
		{MustNew(2024, 6, 10, 0, 0, 0, 0, "UTC"), Delta{Weeks: 2, Days: -1}, MustNew(2024, 6, 23, 0, 0, 0, 0, "UTC")},
		{MustNew(2024, 1, 31, 0, 0, 0, 0, "UTC"), Delta{Months: 1, Days: 1}, MustNew(2024, 3, 1, 0, 0, 0, 0, "UTC")},
		{MustNew(2024, 6, 10, 0, 0, 0, 0, "UTC"), Delta{Microseconds: -1}, MustNew(2024, 6, 9, 23, 59, 59, 999999, "UTC")},
		{MustNew(2024, 3, 9, 2, 30, 0, 0, "America/New_York"), Delta{Days: 1}, MustNew(2024, 3, 10, 3, 30, 0, 0, "America/New_York")},
	} {
		assert.Equal(t, tc.expected, tc.from.Shift(tc.delta), "%v %+v", tc.from, tc.delta)
	}
	shifted, err := MustNew(2024, 6, 10, 0, 0, 0, 0, "UTC").ShiftFrame(FrameWeek, -1)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2024, 6, 3, 0, 0, 0, 0, "UTC"), shifted)
	_, err = MustNew(2024, 6, 10, 0, 0, 0, 0, "UTC").ShiftFrame(Frame(0), 1)
	require.ErrorIs(t, err, terror.ErrUnsupportedFrame)
}

func TestReplace(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 10, 15, 4, 5, 6, "Europe/Berlin")
	replaced, err := instant.Replace("days", 15)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2024, 6, 15, 15, 4, 5, 6, "Europe/Berlin"), replaced)
	replaced, err = instant.Replace("Year", 2008)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2008, 6, 10, 15, 4, 5, 6, "Europe/Berlin"), replaced)
	replaced, err = instant.Replace("microsecond", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, replaced.Microsecond())
	_, err = instant.Replace("month", 13)
	require.ErrorIs(t, err, terror.ErrInvalidComponent)
	_, err = instant.Replace("week", 1)
	require.ErrorIs(t, err, terror.ErrUnsupportedReplacementField)
}
