// SPDX-License-Identifier: ice License 1.0

package time

import (
	"iter"
	"math"
	stdlibtime "time"

	"github.com/ice-blockchain/timestamp/terror"
)

// Range yields start and then every following frame step while the instant is not after end
// and fewer than limit instants were yielded. At least one of end (non nil) or limit (positive) is required.
//
// Each instant is one frame after the previous one, so a wall clock moved out of a DST gap is never yielded twice.
// Month, quarter and year steps are counted from start instead, and once a step lands on a day earlier than the
// start day because the month is too short, that day is latched for the rest of the sequence:
// Jan 31 is followed by Feb 29, Mar 29, Apr 29 (in 2024).
func Range(frame Frame, start Instant, end *Instant, limit int) (iter.Seq[Instant], error) {
	if err := frame.validate(); err != nil {
		return nil, err
	}
	if end == nil && limit <= 0 {
		return nil, terror.Wrapf(terror.ErrMissingBound, map[string]any{"limit": limit}, "range of %v", frame)
	}
	if limit <= 0 {
		limit = math.MaxInt
	}

	return func(yield func(Instant) bool) {
		latchedDay := 0
		current := start
		for step := 0; step < limit && (end == nil || !current.After(*end)); {
			if !yield(current) {
				return
			}
			step++
			if !frame.monthly() {
				current = current.Shift(frame.Delta(1))

				continue
			}
			current = start.Shift(frame.Delta(step))
			if latchedDay == 0 && current.Day() < start.Day() {
				latchedDay = current.Day()
			}
			if latchedDay != 0 && current.Day() > latchedDay {
				current = current.withDay(latchedDay)
			}
		}
	}, nil
}

// SpanRange yields consecutive, frame aligned spans from the one containing start up to the one containing end.
// With exact, spans start at start itself, the last one is clipped to end and nothing starting at end is yielded.
func SpanRange(frame Frame, start, end Instant, bounds Bounds, exact bool) (iter.Seq[Span], error) {
	if err := frame.validate(); err != nil {
		return nil, err
	}
	if err := bounds.validate(); err != nil {
		return nil, err
	}
	if !exact {
		start = start.floor(frame)
	}
	instants, err := Range(frame, start, &end, 0)
	if err != nil {
		return nil, err
	}

	return func(yield func(Span) bool) {
		for current := range instants {
			span := current.span(frame, 1, bounds, exact)
			if exact {
				if span.Ceil.After(end) {
					span.Ceil = end
					if !bounds.includesEnd() {
						span.Ceil = end.add(-stdlibtime.Microsecond)
					}
				}
				if span.Floor.Equal(end) || span.Floor.add(-stdlibtime.Microsecond).Equal(end) {
					return
				}
			}
			if !yield(span) {
				return
			}
		}
	}, nil
}

// Interval merges every n consecutive spans of SpanRange into one, from the floor of the first to the ceil of the n-th.
// A trailing group with fewer than n spans is yielded as well.
func Interval(frame Frame, start, end Instant, n int, bounds Bounds, exact bool) (iter.Seq[Span], error) {
	if n < 1 {
		return nil, terror.Wrapf(terror.ErrInvalidInterval, map[string]any{"interval": n}, "interval %v", n)
	}
	spans, err := SpanRange(frame, start, end, bounds, exact)
	if err != nil {
		return nil, err
	}

	return func(yield func(Span) bool) {
		var group Span
		grouped := 0
		for span := range spans {
			if grouped == 0 {
				group = span
			} else {
				group.Ceil = span.Ceil
			}
			if grouped++; grouped == n {
				if !yield(group) {
					return
				}
				grouped = 0
			}
		}
		if grouped > 0 {
			yield(group)
		}
	}, nil
}
