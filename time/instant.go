// SPDX-License-Identifier: ice License 1.0

package time

import (
	"math"
	"strings"
	stdlibtime "time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/timestamp/config"
	"github.com/ice-blockchain/timestamp/log"
	"github.com/ice-blockchain/timestamp/terror"
	"github.com/ice-blockchain/timestamp/tz"
)

// .
var (
	//nolint:gochecknoglobals // Immutable singleton, loaded once.
	appCfg cfg
	//nolint:gochecknoglobals // Immutable defaults for applications that configure nothing.
	defaultCfg = cfg{DefaultTimezone: "UTC", Policy: "strict"}
)

//nolint:gochecknoinits // Config is global, so it's loaded once, on init.
func init() {
	config.MustLoadFromKeyWithDefaults(applicationYamlKey, &appCfg, &defaultCfg)
}

// New builds an Instant out of its wall clock fields in the given zone (anything tz.Resolve accepts).
// With a Strict or ClampTimezone policy, out of range fields are rejected, all of them reported at once;
// with ClampFields or ClampBoth they are clamped to the nearest valid value.
// Wall clocks skipped by a DST transition are moved forward by the size of the gap.
func New(year, month, day, hour, minute, second, microsecond int, zone any, policy Policy) (Instant, error) {
	resolved, err := tz.Resolve(zone, policy.clampsTimezone())
	if err != nil {
		return Instant{}, errors.Wrap(err, "failed to resolve timezone")
	}
	flds := fields{year, month, day, hour, minute, second, microsecond}
	if err = flds.validate(); err != nil {
		if !policy.clampsFields() {
			return Instant{}, err
		}
		flds = flds.clamp()
	}

	return flds.in(resolved), nil
}

func MustNew(year, month, day, hour, minute, second, microsecond int, zone any) Instant {
	instant, err := New(year, month, day, hour, minute, second, microsecond, zone, Strict)
	log.Panic(err) //nolint:revive // That's the point.

	return instant
}

func FromDate(year, month, day int, zone any) (Instant, error) {
	return New(year, month, day, 0, 0, 0, 0, zone, Strict)
}

// FromStdlib keeps both the point in time and the location of t. Precision beyond microseconds is dropped.
func FromStdlib(t stdlibtime.Time) Instant {
	t = t.Round(0).Truncate(stdlibtime.Microsecond)
	zone := tz.FromLocation(t.Location(), t)

	return Instant{t: t.In(zone.Location()), zone: zone}
}

// FromTimestamp accepts seconds, milliseconds or microseconds since the epoch, guessing the unit by magnitude.
func FromTimestamp(timestamp float64, zone any) (Instant, error) {
	seconds, err := normalizeTimestamp(timestamp)
	if err != nil {
		return Instant{}, err
	}
	resolved, err := tz.Resolve(zone, false)
	if err != nil {
		return Instant{}, errors.Wrap(err, "failed to resolve timezone")
	}
	whole := math.Floor(seconds)
	micros := int64(whole)*microsPerSecond + int64(math.Round((seconds-whole)*float64(microsPerSecond)))

	return fromUnixMicro(micros, resolved), nil
}

// FromOrdinal builds the midnight of the proleptic Gregorian ordinal day, where 0001-01-01 is day 1.
func FromOrdinal(ordinal int, zone any) (Instant, error) {
	if ordinal < MinOrdinal || ordinal > MaxOrdinal {
		return Instant{}, terror.Wrapf(terror.ErrInvalidOrdinal, map[string]any{"ordinal": ordinal},
			"ordinal %v out of range [%v, %v]", ordinal, MinOrdinal, MaxOrdinal)
	}
	year, month, day := stdlibtime.Date(MinYear, stdlibtime.January, 1, 0, 0, 0, 0, stdlibtime.UTC).AddDate(0, 0, ordinal-1).Date()

	return FromDate(year, int(month), day, zone)
}

// Now returns the current instant in zone, or in the configured default timezone when zone is nil.
func Now(zone any) (Instant, error) {
	if zone == nil {
		zone = appCfg.DefaultTimezone
	}
	resolved, err := tz.Resolve(zone, DefaultPolicy().clampsTimezone())
	if err != nil {
		return Instant{}, errors.Wrap(err, "failed to resolve timezone")
	}

	return Instant{t: stdlibtime.Now().Round(0).Truncate(stdlibtime.Microsecond), zone: resolved}.withZone(resolved), nil
}

func UTCNow() Instant {
	return FromStdlib(stdlibtime.Now().UTC())
}

// DefaultPolicy is the construction policy configured under the `timestamp` key, Strict if none.
func DefaultPolicy() Policy {
	policy, err := ParsePolicy(appCfg.Policy)
	if err != nil {
		return Strict
	}

	return policy
}

func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "", "strict":
		return Strict, nil
	case "clampfields":
		return ClampFields, nil
	case "clamptimezone":
		return ClampTimezone, nil
	case "clampboth":
		return ClampBoth, nil
	default:
		return Strict, errors.Errorf("unknown policy %q", name)
	}
}

func (p Policy) clampsFields() bool {
	return p == ClampFields || p == ClampBoth
}

func (p Policy) clampsTimezone() bool {
	return p == ClampTimezone || p == ClampBoth
}

func (i Instant) Year() int {
	return i.t.Year()
}

func (i Instant) Month() int {
	return int(i.t.Month())
}

func (i Instant) Day() int {
	return i.t.Day()
}

func (i Instant) Hour() int {
	return i.t.Hour()
}

func (i Instant) Minute() int {
	return i.t.Minute()
}

func (i Instant) Second() int {
	return i.t.Second()
}

func (i Instant) Microsecond() int {
	return i.t.Nanosecond() / nanosPerMicro
}

func (i Instant) Zone() tz.Zone {
	return i.zone
}

// TZ is the canonical label of the zone, see tz.Extract.
func (i Instant) TZ() string {
	return tz.Extract(i.zone)
}

func (i Instant) Location() *stdlibtime.Location {
	return i.zone.Location()
}

func (i Instant) Stdlib() stdlibtime.Time {
	return i.t
}

func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

func (i Instant) Date() Date {
	return Date{Year: i.Year(), Month: i.Month(), Day: i.Day()}
}

// Weekday counts from Monday as 0.
func (i Instant) Weekday() int {
	return i.ISOWeekday() - 1
}

// ISOWeekday counts from Monday as 1 to Sunday as 7.
func (i Instant) ISOWeekday() int {
	if wd := i.t.Weekday(); wd != stdlibtime.Sunday {
		return int(wd)
	}

	return daysPerWeek
}

func (i Instant) ISOCalendar() (year, week, weekday int) {
	year, week = i.t.ISOWeek()

	return year, week, i.ISOWeekday()
}

func (i Instant) YearDay() int {
	return i.t.YearDay()
}

func (i Instant) Quarter() int {
	return (i.Month()-1)/monthsPerQuarter + 1
}

func (i Instant) Unix() int64 {
	return i.t.Unix()
}

func (i Instant) UnixMicro() int64 {
	return i.t.UnixMicro()
}

// Timestamp is the number of seconds since the epoch, with the microseconds as fraction.
func (i Instant) Timestamp() float64 {
	return float64(i.UnixMicro()) / float64(microsPerSecond)
}

func (i Instant) UTCOffset() stdlibtime.Duration {
	_, offset := i.t.Zone()

	return stdlibtime.Duration(offset) * stdlibtime.Second
}

func (i Instant) TZName() string {
	return i.t.Format("MST")
}

func (i Instant) IsDST() bool {
	return i.t.IsDST()
}

// Ambiguous tells whether the wall clock of the instant happens twice in its zone, because of a backward transition.
func (i Instant) Ambiguous() bool {
	_, offset := i.t.Zone()
	for _, probe := range []stdlibtime.Duration{-24 * stdlibtime.Hour, 24 * stdlibtime.Hour} { //nolint:gomnd // A day both ways.
		_, other := i.t.Add(probe).Zone()
		if other == offset {
			continue
		}
		if alt := i.t.Add(stdlibtime.Duration(offset-other) * stdlibtime.Second); fieldsOf(alt) == fieldsOf(i.t) {
			return true
		}
	}

	return false
}

// Ordinal is the proleptic Gregorian ordinal of the wall date, where 0001-01-01 is day 1.
func (i Instant) Ordinal() int {
	epoch := stdlibtime.Date(MinYear, stdlibtime.January, 1, 0, 0, 0, 0, stdlibtime.UTC).Unix()
	day := stdlibtime.Date(i.Year(), i.t.Month(), i.Day(), 0, 0, 0, 0, stdlibtime.UTC).Unix()

	return int((day-epoch)/int64(stdlibtime.Hour*24/stdlibtime.Second)) + 1 //nolint:gomnd // Seconds per day.
}

// To converts the instant into another zone, keeping the point in time.
func (i Instant) To(zone any) (Instant, error) {
	resolved, err := tz.Resolve(zone, false)
	if err != nil {
		return Instant{}, errors.Wrap(err, "failed to resolve timezone")
	}

	return Instant{t: i.t.In(resolved.Location()), zone: resolved}, nil
}

func (i Instant) UTC() Instant {
	return Instant{t: i.t.UTC(), zone: tz.UTC}
}

// ReplaceZone keeps the wall clock and attaches another zone to it, which changes the point in time.
func (i Instant) ReplaceZone(zone any) (Instant, error) {
	resolved, err := tz.Resolve(zone, false)
	if err != nil {
		return Instant{}, errors.Wrap(err, "failed to resolve timezone")
	}

	return fieldsOf(i.t).in(resolved), nil
}

func (i Instant) withZone(zone tz.Zone) Instant {
	return Instant{t: i.t.In(zone.Location()), zone: zone}
}

func fromUnixMicro(micros int64, zone tz.Zone) Instant {
	return Instant{t: stdlibtime.UnixMicro(micros).In(zone.Location()), zone: zone}
}

func normalizeTimestamp(timestamp float64) (float64, error) {
	data := map[string]any{"timestamp": timestamp}
	switch {
	case math.IsNaN(timestamp) || timestamp < MinTimestamp:
		return 0, terror.Wrapf(terror.ErrInvalidTimestamp, data, "timestamp too small: %v", timestamp)
	case timestamp <= MaxTimestamp:
		return timestamp, nil
	case timestamp < MaxTimestampMS:
		return timestamp / 1e3, nil
	case timestamp < MaxTimestampUS:
		return timestamp / 1e6, nil
	default:
		return 0, terror.Wrapf(terror.ErrInvalidTimestamp, data, "timestamp too large: %v", timestamp)
	}
}

func fieldsOf(t stdlibtime.Time) fields {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	return fields{year, int(month), day, hour, minute, second, t.Nanosecond() / nanosPerMicro}
}

func daysIn(year, month int) int {
	return stdlibtime.Date(year, stdlibtime.Month(month)+1, 0, 0, 0, 0, 0, stdlibtime.UTC).Day()
}

func (f fields) limits() (lower, upper fields) {
	lastDay := 31 //nolint:gomnd // Longest month, used while year or month are invalid themselves.
	if f[fieldYear] >= MinYear && f[fieldYear] <= MaxYear && f[fieldMonth] >= 1 && f[fieldMonth] <= monthsPerYear {
		lastDay = daysIn(f[fieldYear], f[fieldMonth])
	}

	return fields{MinYear, 1, 1, 0, 0, 0, 0},
		fields{MaxYear, monthsPerYear, lastDay, 23, 59, 59, int(microsPerSecond) - 1} //nolint:gomnd // Clock limits.
}

func (f fields) validate() error {
	lower, upper := f.limits()
	var result *multierror.Error
	for ix, val := range f {
		if val < lower[ix] || val > upper[ix] {
			result = multierror.Append(result, errors.Wrapf(terror.ErrInvalidComponent,
				"%v %v out of range [%v, %v]", fieldNames[ix], val, lower[ix], upper[ix]))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		data := make(map[string]any, len(f))
		for ix, val := range f {
			data[fieldNames[ix]] = val
		}

		return terror.New(err, data)
	}

	return nil
}

func (f fields) clamp() fields {
	for ix := range f {
		// Day limits depend on the year and month, so they are recomputed after each of those are clamped.
		lower, upper := f.limits()
		f[ix] = max(lower[ix], min(upper[ix], f[ix]))
	}

	return f
}

func (f fields) date(loc *stdlibtime.Location) stdlibtime.Time {
	return stdlibtime.Date(f[fieldYear], stdlibtime.Month(f[fieldMonth]), f[fieldDay],
		f[fieldHour], f[fieldMinute], f[fieldSecond], f[fieldMicrosecond]*nanosPerMicro, loc)
}

// civil resolves the wall clock in loc. Wall clocks that do not exist, because a forward DST transition skipped them,
// are moved forward by the size of the gap, so 02:30 on a spring-forward night becomes 03:30.
func (f fields) civil(loc *stdlibtime.Location) stdlibtime.Time {
	t := f.date(loc)
	if fieldsOf(t) == f {
		return t
	}
	_, before := t.Add(-24 * stdlibtime.Hour).Zone() //nolint:gomnd // A day before the transition.
	_, after := t.Add(24 * stdlibtime.Hour).Zone()   //nolint:gomnd // A day after the transition.
	if after <= before {
		return t
	}
	shifted := fieldsOf(f.date(stdlibtime.UTC).Add(stdlibtime.Duration(after-before) * stdlibtime.Second))

	return shifted.date(loc)
}

func (f fields) in(zone tz.Zone) Instant {
	return Instant{t: f.civil(zone.Location()), zone: zone}
}
