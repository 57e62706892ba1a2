// SPDX-License-Identifier: ice License 1.0

package time

import (
	"strconv"
	"strings"
	stdlibtime "time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/timestamp/log"
	"github.com/ice-blockchain/timestamp/terror"
	"github.com/ice-blockchain/timestamp/tz"
)

//nolint:gochecknoglobals // Immutable list of layouts the fallback parser tries on top of its own.
var fallbackLayouts = []string{
	stdlibtime.RFC3339Nano,
	stdlibtime.RFC1123Z,
	stdlibtime.RFC1123,
	stdlibtime.RFC850,
	stdlibtime.RFC822Z,
	stdlibtime.RFC822,
	stdlibtime.ANSIC,
	stdlibtime.UnixDate,
	"January 2, 2006",
	"January 2, 2006 15:04:05",
	"Jan 2, 2006",
	"Jan 2, 2006 15:04:05",
	"2 January 2006",
	"02 Jan 2006",
}

// ParseStamp parses the compact datetime grammar: 2024-06-10, 20240610, 2024/06/10 15:04, 2024-06-10T15:04:05.123456+05:30,
// 2024-06-10 15:04:05 Europe/Berlin, ...
// A timezone name in the string wins over an offset, which wins over zone.
// Fractions are read as the leading digits of the second, so .5 is half a second.
func ParseStamp(stamp string, zone any) (Instant, error) {
	match := stampPattern.FindStringSubmatch(strings.TrimSpace(stamp))
	if match == nil {
		return Instant{}, terror.Wrapf(terror.ErrUnparsable, map[string]any{"value": stamp}, "%q does not match the datetime grammar", stamp)
	}
	group := func(name string) string {
		return match[stampPattern.SubexpIndex(name)]
	}
	number := func(name string) int {
		val, _ := strconv.Atoi(group(name)) //nolint:errcheck // The grammar guarantees digits, empty is 0.

		return val
	}
	if name := group("tzname"); name != "" {
		zone = name
	} else if offset := group("tzoffset"); strings.ContainsAny(offset, "0123456789") {
		zone = offset
	}
	micros, _ := strconv.Atoi((group("microsecond") + "000000")[:6]) //nolint:errcheck // Digits only.

	return New(number("year"), number("month"), number("day"),
		number("hour"), number("minute"), number("second"), micros, zone, DefaultPolicy())
}

// Parse reads anything that looks like a date: the compact grammar of ParseStamp first, then RFC layouts and
// the common english ones ("June 10, 2024", "10 Jun 2024"...).
// Six digits are read as a year and a month, meaning its first day.
// Strings without their own zone are placed in zone, or in the configured default timezone when zone is nil.
func Parse(value string, zone any) (Instant, error) {
	value = strings.TrimSpace(value)
	if len(value) == 6 && isDigits(value) { //nolint:gomnd // YYYYMM.
		value = value[:4] + "-" + value[4:] + "-01"
	}
	zone = zoneOrDefault(zone)
	if stampPattern.MatchString(value) {
		return ParseStamp(value, zone)
	}
	resolved, err := tz.Resolve(zone, DefaultPolicy().clampsTimezone())
	if err != nil {
		return Instant{}, errors.Wrap(err, "failed to resolve timezone")
	}
	parser := now.Config{
		WeekStartDay: stdlibtime.Monday,
		TimeLocation: resolved.Location(),
		TimeFormats:  fallbackLayouts,
	}
	parsed, err := parser.Parse(value)
	if err != nil {
		return Instant{}, terror.New(errors.Wrapf(terror.ErrUnparsable, "%q: %v", value, err), map[string]any{"value": value})
	}
	log.Debug("parsed with the fallback layouts", "value", value, "result", parsed)
	if parsed.Location() == resolved.Location() {
		return Instant{t: parsed.Round(0).Truncate(stdlibtime.Microsecond), zone: resolved}, nil
	}

	return FromStdlib(parsed), nil
}

// Get converts any supported value into an Instant: Instant, *Instant, time.Time, Date, NaiveDateTime, AwareDateTime,
// ObjectID, UUID, Text, strings and numeric timestamps. A non nil zone converts the result into that zone,
// or, for values without one, is the zone they are read in.
//
//nolint:funlen,gocyclo,revive,cyclop // A flat type switch reads better than splitting it.
func Get(value any, zone any) (Instant, error) {
	var (
		instant Instant
		err     error
	)
	switch val := value.(type) {
	case Instant:
		instant = val
	case *Instant:
		if val == nil {
			return Instant{}, terror.Wrapf(terror.ErrUnparsable, map[string]any{"value": value}, "nil instant")
		}
		instant = *val
	case stdlibtime.Time:
		instant = FromStdlib(val)
	case AwareDateTime:
		instant = FromStdlib(val.Time)
	case ObjectID:
		instant = val.instant()
	case UUID:
		if instant, err = val.instant(); err != nil {
			return Instant{}, err
		}
	case Date:
		return FromDate(val.Year, val.Month, val.Day, zoneOrDefault(zone))
	case NaiveDateTime:
		flds := fieldsOf(val.Time)

		return New(flds[fieldYear], flds[fieldMonth], flds[fieldDay], flds[fieldHour], flds[fieldMinute], flds[fieldSecond],
			flds[fieldMicrosecond], zoneOrDefault(zone), DefaultPolicy())
	case int:
		return FromTimestamp(float64(val), zoneOrDefault(zone))
	case int64:
		return FromTimestamp(float64(val), zoneOrDefault(zone))
	case float64:
		return FromTimestamp(val, zoneOrDefault(zone))
	case string:
		return Parse(val, zone)
	case Text:
		return Parse(string(val), zone)
	default:
		return Instant{}, terror.Wrapf(terror.ErrUnparsable, map[string]any{"value": value}, "unsupported value type %T", value)
	}
	if zone == nil {
		return instant, nil
	}

	return instant.To(zone)
}

func zoneOrDefault(zone any) any {
	if zone == nil {
		return appCfg.DefaultTimezone
	}

	return zone
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return value != ""
}
