// SPDX-License-Identifier: ice License 1.0

package xlate

import (
	"strconv"
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"

	appcfg "github.com/ice-blockchain/timestamp/config"
	"github.com/ice-blockchain/timestamp/terror"
	"github.com/ice-blockchain/timestamp/time"
	"github.com/ice-blockchain/timestamp/tz"
)

//nolint:gochecknoglobals // Immutable keyword table.
var rules = map[string]rule{
	"default": func(r *resolver, now time.Instant, direction Direction) (time.Instant, error) {
		if direction == To {
			return now, nil
		}

		return now.Shift(time.Delta{Days: -r.cfg.TimestampXlate.LookbackDays}), nil
	},
	"now":         current,
	"current":     current,
	"hour":        frameOf(time.FrameHour, 0),
	"day":         frameOf(time.FrameDay, 0),
	"week":        frameOf(time.FrameWeek, 0),
	"month":       frameOf(time.FrameMonth, 0),
	"lasthour":    frameOf(time.FrameHour, -1),
	"yesterday":   frameOf(time.FrameDay, -1),
	"lastday":     frameOf(time.FrameDay, -1),
	"lastweek":    frameOf(time.FrameWeek, -1),
	"lastmonth":   frameOf(time.FrameMonth, -1),
	"lastquarter": frameOf(time.FrameQuarter, -1),
	"lastyear":    frameOf(time.FrameYear, -1),
	"bot": func(r *resolver, now time.Instant, _ Direction) (time.Instant, error) {
		floor, err := now.Floor(time.FrameYear)
		if err != nil {
			return time.Instant{}, err
		}

		return floor.Replace("year", r.cfg.TimestampXlate.BeginningOfTime)
	},
}

// New builds a Resolver configured under applicationYamlKey/timestamp/xlate.
// Missing settings default to UTC, a beginning of time in 2008 and a 32 days lookback.
func New(applicationYamlKey string, opts ...Option) Resolver {
	var cfg config
	defaults := new(config)
	defaults.TimestampXlate.Timezone = "UTC"
	defaults.TimestampXlate.BeginningOfTime = 2008
	defaults.TimestampXlate.LookbackDays = 32
	appcfg.MustLoadFromKeyWithDefaults(applicationYamlKey, &cfg, defaults)
	r := &resolver{cfg: &cfg, clock: stdlibtime.Now, zone: tz.MustResolve(cfg.TimestampXlate.Timezone)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithClock replaces the source of the current time.
func WithClock(clock func() stdlibtime.Time) Option {
	return func(r *resolver) {
		r.clock = clock
	}
}

// Resolve tries, in order, the keywords, absolute stamps (returned in UTC) and signed counts of a frame ("-3days", "2 weeks").
func (r *resolver) Resolve(rule string, direction Direction) (time.Instant, error) {
	rule = strings.TrimSpace(rule)
	keyword := strings.ToLower(rule)
	now, err := time.FromStdlib(r.clock()).To(r.zone)
	if err != nil {
		return time.Instant{}, errors.Wrap(err, "failed to convert now")
	}
	if resolve, found := rules[keyword]; found {
		return resolve(r, now, direction)
	}
	if instant, sErr := time.ParseStamp(rule, tz.UTC); sErr == nil {
		return instant.UTC(), nil
	} else if !errors.Is(sErr, terror.ErrUnparsable) {
		return time.Instant{}, errors.Wrapf(sErr, "invalid datetime %q", rule)
	}
	if match := relativePattern.FindStringSubmatch(keyword); match != nil {
		n, cErr := strconv.Atoi(match[1])
		if cErr != nil {
			return time.Instant{}, errors.Wrapf(cErr, "invalid count in %q", rule)
		}
		frame, fErr := time.ParseFrame(match[2])
		if fErr != nil {
			return time.Instant{}, fErr
		}

		return now.ShiftFrame(frame, n)
	}

	return time.Instant{}, terror.Wrapf(terror.ErrUnsupportedRule, map[string]any{"rule": rule}, "unsupported rule %q", rule)
}

func current(_ *resolver, now time.Instant, _ Direction) (time.Instant, error) {
	return now, nil
}

// frameOf resolves to the start (From) or the last microsecond (To) of the frame, offset frames away from now.
func frameOf(frame time.Frame, offset int) rule {
	return func(_ *resolver, now time.Instant, direction Direction) (time.Instant, error) {
		span, err := now.Shift(frame.Delta(offset)).Span(frame, 1, time.ClosedOpen, false)
		if err != nil {
			return time.Instant{}, err
		}
		if direction == To {
			return span.Ceil, nil
		}

		return span.Floor, nil
	}
}
