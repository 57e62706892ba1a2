// SPDX-License-Identifier: ice License 1.0

package time

import (
	"strings"
	stdlibtime "time"

	"github.com/ice-blockchain/timestamp/terror"
)

//nolint:gochecknoglobals // Immutable lookup table.
var frameSpecs = map[Frame]frameSpec{
	FrameSecond:  {name: "second", field: fieldSecond, delta: func(n int) Delta { return Delta{Seconds: n} }},
	FrameMinute:  {name: "minute", field: fieldMinute, delta: func(n int) Delta { return Delta{Minutes: n} }},
	FrameHour:    {name: "hour", field: fieldHour, delta: func(n int) Delta { return Delta{Hours: n} }},
	FrameDay:     {name: "day", field: fieldDay, delta: func(n int) Delta { return Delta{Days: n} }},
	FrameWeek:    {name: "week", field: fieldDay, delta: func(n int) Delta { return Delta{Weeks: n} }},
	FrameMonth:   {name: "month", field: fieldMonth, delta: func(n int) Delta { return Delta{Months: n} }},
	FrameQuarter: {name: "quarter", field: fieldMonth, delta: func(n int) Delta { return Delta{Quarters: n} }},
	FrameYear:    {name: "year", field: fieldYear, delta: func(n int) Delta { return Delta{Years: n} }},
}

// ParseFrame accepts frame names in singular or plural form: "day", "days", "quarter", "quarters"...
func ParseFrame(name string) (Frame, error) {
	singular := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	for frame, spec := range frameSpecs {
		if spec.name == singular {
			return frame, nil
		}
	}

	return 0, terror.Wrapf(terror.ErrUnsupportedFrame, map[string]any{"frame": name},
		"frame %q not in second, minute, hour, day, week, month, quarter, year", name)
}

func (f Frame) String() string {
	if spec, found := frameSpecs[f]; found {
		return spec.name
	}

	return "unknown"
}

func (f Frame) validate() error {
	if _, found := frameSpecs[f]; !found {
		return terror.Wrapf(terror.ErrUnsupportedFrame, map[string]any{"frame": int(f)}, "unsupported frame %v", int(f))
	}

	return nil
}

// Delta returns the shift of n steps of the frame.
func (f Frame) Delta(n int) Delta {
	return frameSpecs[f].delta(n)
}

// monthly frames step through months of different lengths, so the day of the month can get clamped.
func (f Frame) monthly() bool {
	return f == FrameMonth || f == FrameQuarter || f == FrameYear
}

func ParseBounds(bounds string) (Bounds, error) {
	b := Bounds(bounds)

	return b, b.validate()
}

func (b Bounds) validate() error {
	switch b {
	case Open, OpenClosed, ClosedOpen, Closed:
		return nil
	default:
		return terror.Wrapf(terror.ErrInvalidBounds, map[string]any{"bounds": string(b)},
			"bounds %q not in (), (], [), []", string(b))
	}
}

func (b Bounds) includesStart() bool {
	return b[0] == '['
}

func (b Bounds) includesEnd() bool {
	return b[1] == ']'
}

// Shift applies the delta. Months are added first, clamping the day to the length of the target month
// (Jan 31 + 1 month is the last day of February), then calendar days, then wall clock time.
// A result inside a DST gap is moved forward to the next existing wall clock.
func (i Instant) Shift(d Delta) Instant {
	if d == (Delta{}) {
		return i
	}
	flds := fieldsOf(i.t)
	months := flds[fieldYear]*monthsPerYear + flds[fieldMonth] - 1 +
		d.Years*monthsPerYear + d.Quarters*monthsPerQuarter + d.Months
	flds[fieldYear], flds[fieldMonth] = floorDiv(months, monthsPerYear), months-floorDiv(months, monthsPerYear)*monthsPerYear+1
	flds[fieldDay] = min(flds[fieldDay], daysIn(flds[fieldYear], flds[fieldMonth]))
	wall := flds.date(stdlibtime.UTC).
		AddDate(0, 0, d.Weeks*daysPerWeek+d.Days).
		Add(stdlibtime.Duration(d.Hours)*stdlibtime.Hour +
			stdlibtime.Duration(d.Minutes)*stdlibtime.Minute +
			stdlibtime.Duration(d.Seconds)*stdlibtime.Second +
			stdlibtime.Duration(d.Microseconds)*stdlibtime.Microsecond)

	return fieldsOf(wall).in(i.zone)
}

func (i Instant) ShiftFrame(frame Frame, n int) (Instant, error) {
	if err := frame.validate(); err != nil {
		return Instant{}, err
	}

	return i.Shift(frame.Delta(n)), nil
}

// Replace sets one wall clock field. Plural field names are accepted too.
func (i Instant) Replace(field string, value int) (Instant, error) {
	name := strings.TrimSuffix(strings.ToLower(field), "s")
	for ix, fieldName := range fieldNames {
		if fieldName != name {
			continue
		}
		flds := fieldsOf(i.t)
		flds[ix] = value
		if err := flds.validate(); err != nil {
			return Instant{}, err
		}

		return flds.in(i.zone), nil
	}

	return Instant{}, terror.Wrapf(terror.ErrUnsupportedReplacementField, map[string]any{"field": field},
		"field %q not in year, month, day, hour, minute, second, microsecond", field)
}

func (i Instant) Floor(frame Frame) (Instant, error) {
	if err := frame.validate(); err != nil {
		return Instant{}, err
	}

	return i.floor(frame), nil
}

// Ceil returns the last microsecond of the count frames starting with the one containing the instant.
func (i Instant) Ceil(frame Frame, count int) (Instant, error) {
	if err := frame.validate(); err != nil {
		return Instant{}, err
	}
	if count < 1 {
		return Instant{}, terror.Wrapf(terror.ErrInvalidInterval, map[string]any{"count": count}, "ceil of %v %v", count, frame)
	}

	return i.span(frame, count, ClosedOpen, false).Ceil, nil
}

// Span returns the frame aligned interval containing the instant, count frames long.
// With exact, the interval starts at the instant itself instead of the start of its frame.
// Open ends are moved inwards by one microsecond.
func (i Instant) Span(frame Frame, count int, bounds Bounds, exact bool) (Span, error) {
	if err := frame.validate(); err != nil {
		return Span{}, err
	}
	if err := bounds.validate(); err != nil {
		return Span{}, err
	}

	return i.span(frame, count, bounds, exact), nil
}

func (i Instant) floor(frame Frame) Instant {
	flds := fieldsOf(i.t)
	for ix := frameSpecs[frame].field + 1; ix < numFields; ix++ {
		flds[ix] = 0
		if ix == fieldMonth || ix == fieldDay {
			flds[ix] = 1
		}
	}
	floor := flds.in(i.zone)
	switch frame { //nolint:exhaustive // Only these are not aligned to a base unit.
	case FrameWeek:
		floor = floor.Shift(Delta{Days: -(i.ISOWeekday() - 1)})
	case FrameQuarter:
		floor = floor.Shift(Delta{Months: -((i.Month() - 1) % monthsPerQuarter)})
	}

	return floor
}

func (i Instant) span(frame Frame, count int, bounds Bounds, exact bool) Span {
	floor := i
	if !exact {
		floor = i.floor(frame)
	}
	ceil := floor.Shift(frame.Delta(count))
	if !bounds.includesStart() {
		floor = floor.add(stdlibtime.Microsecond)
	}
	if !bounds.includesEnd() {
		ceil = ceil.add(-stdlibtime.Microsecond)
	}

	return Span{Floor: floor, Ceil: ceil}
}

// add moves the instant by an absolute duration, regardless of the wall clock.
func (i Instant) add(d stdlibtime.Duration) Instant {
	return Instant{t: i.t.Add(d), zone: i.zone}
}

func (i Instant) withDay(day int) Instant {
	flds := fieldsOf(i.t)
	flds[fieldDay] = day

	return flds.in(i.zone)
}

// Contains tells whether the instant is within the span, both ends included.
func (s Span) Contains(instant Instant) bool {
	return !instant.Before(s.Floor) && !instant.After(s.Ceil)
}

func (s Span) Duration() stdlibtime.Duration {
	return s.Ceil.t.Sub(s.Floor.t)
}

func (s Span) String() string {
	return "[" + s.Floor.String() + ", " + s.Ceil.String() + "]"
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
