// SPDX-License-Identifier: ice License 1.0

package time

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	stdlibtime "time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ice-blockchain/timestamp/tz"
)

// Public API.

const (
	MinYear    = 1
	MaxYear    = 9999
	MinOrdinal = 1
	MaxOrdinal = 3652059
	// MinTimestamp is 0001-01-02T00:00:00Z, the first second whose conversion cannot underflow in any zone.
	MinTimestamp = -62135510400.0
	// MaxTimestamp is 9999-12-31T23:59:59.999999Z.
	MaxTimestamp   = 253402300799.999999
	MaxTimestampMS = MaxTimestamp * 1e3
	MaxTimestampUS = MaxTimestamp * 1e6

	DefaultFormat = "YYYY-MM-DD HH:mm:ssZZ"
)

const (
	Strict Policy = iota
	ClampFields
	ClampTimezone
	ClampBoth
)

const (
	FrameSecond Frame = iota + 1
	FrameMinute
	FrameHour
	FrameDay
	FrameWeek
	FrameMonth
	FrameQuarter
	FrameYear
)

const (
	Open       Bounds = "()"
	OpenClosed Bounds = "(]"
	ClosedOpen Bounds = "[)"
	Closed     Bounds = "[]"
)

const (
	Eq Comparison = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

type (
	// Instant is an immutable, timezone attached point in time with microsecond precision.
	// The zero value is 0001-01-01T00:00:00 UTC.
	Instant struct {
		t    stdlibtime.Time
		zone tz.Zone
	}

	// Policy decides what construction does with out of range fields and unresolvable timezones.
	Policy uint8

	// Frame is a calendar granularity used for flooring, ceiling and stepping.
	Frame uint8

	// Bounds is an interval notation telling which ends of a Span are inclusive.
	Bounds string

	Span struct {
		Floor Instant
		Ceil  Instant
	}

	// Delta is a calendar aware shift. Years, quarters and months move the calendar month and clamp the day
	// to the length of the target month, weeks and days move calendar days, the rest is wall clock time.
	Delta struct {
		Years        int
		Quarters     int
		Months       int
		Weeks        int
		Days         int
		Hours        int
		Minutes      int
		Seconds      int
		Microseconds int
	}

	Comparison uint8

	// Operand is anything an Instant can be compared with:
	// Instant, Date, NaiveDateTime, AwareDateTime, ObjectID, UUID or Text.
	Operand interface {
		operand()
	}

	// Date is a calendar date without time or zone; comparisons use the Instant's wall date.
	Date struct {
		Year  int
		Month int
		Day   int
	}

	// NaiveDateTime is compared against the Instant's wall clock, its location is ignored.
	NaiveDateTime struct {
		stdlibtime.Time
	}

	// AwareDateTime is compared as an absolute point in time.
	AwareDateTime struct {
		stdlibtime.Time
	}

	// ObjectID is compared through the creation time embedded in it.
	ObjectID primitive.ObjectID

	// UUID is compared through the creation time embedded in time based (v1, v2, v6, v7) uuids.
	UUID uuid.UUID

	// Text is parsed the same way Parse does before comparing.
	Text string

	SmartOptions struct {
		DateSeparator string
		Separator     string
		TimeSeparator string
		WithZone      bool
	}
)

// Private API.

const (
	fieldYear = iota
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldMicrosecond
	numFields

	microsPerSecond  = int64(stdlibtime.Second / stdlibtime.Microsecond)
	nanosPerMicro    = int(stdlibtime.Microsecond)
	monthsPerYear    = 12
	monthsPerQuarter = 3
	daysPerWeek      = 7

	applicationYamlKey = "timestamp"
)

type (
	fields [numFields]int

	frameSpec struct {
		name  string
		field int
		delta func(int) Delta
	}

	cfg struct {
		DefaultTimezone string `yaml:"defaultTimezone" mapstructure:"defaultTimezone"`
		Policy          string `yaml:"policy" mapstructure:"policy"`
	}
)

//nolint:gochecknoglobals // Compiled once, read only afterwards.
var (
	fieldNames = [numFields]string{"year", "month", "day", "hour", "minute", "second", "microsecond"}

	formatPattern = regexp.MustCompile(
		`\[[^\]]*\]|YYYY|YY|MMMM|MMM|MM|M|Do|DDDD|DDD|DD|D|dddd|ddd|d|HH|H|hh|h|mm|m|ss|s|S{1,6}|ZZZ|ZZ|Z|a|A|X|x|W`)

	stampPattern = regexp.MustCompile(`^(?P<year>\d{2,4})[-/]?` +
		`(?P<month>\d{1,2})[-/]?` +
		`(?P<day>\d{1,2})[\sT]?` +
		`(?P<hour>\d{0,2}):?` +
		`(?P<minute>\d{0,2}):?` +
		`(?P<second>\d{0,2})[\s.]?` +
		`(?P<microsecond>\d{0,6})\s?` +
		`(?P<tzoffset>[+-]?\d{0,2}:?\d{0,2})\s?` +
		`(?P<tzname>\w*/?\w*)$`)
)

var (
	_ msgpack.CustomEncoder                        = Instant{}
	_ msgpack.CustomDecoder                        = (*Instant)(nil)
	_ json.UnmarshalerContext                      = (*Instant)(nil)
	_ json.MarshalerContext                        = Instant{}
	_ sql.Scanner                                  = (*Instant)(nil)
	_ driver.Valuer                                = Instant{}
	_ pgtype.TimestamptzScanner                    = (*Instant)(nil)
	_ pgtype.TimestamptzValuer                     = Instant{}
	_ interface{ MarshalBinary() ([]byte, error) } = Instant{}
	_ interface{ MarshalText() ([]byte, error) }   = Instant{}
	_ interface{ UnmarshalBinary([]byte) error }   = (*Instant)(nil)
	_ interface{ UnmarshalText([]byte) error }     = (*Instant)(nil)
	_ Operand                                      = Instant{}
)
