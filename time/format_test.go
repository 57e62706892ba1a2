// SPDX-License-Identifier: ice License 1.0

package time

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTokens(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 10, 15, 4, 5, 123456, "UTC")
	for token, expected := range map[string]string{
		"YYYY":   "2024",
		"YY":     "24",
		"MMMM":   "June",
		"MMM":    "Jun",
		"MM":     "06",
		"M":      "6",
		"DDDD":   "162",
		"DDD":    "162",
		"DD":     "10",
		"D":      "10",
		"Do":     "10th",
		"dddd":   "Monday",
		"ddd":    "Mon",
		"d":      "1",
		"HH":     "15",
		"H":      "15",
		"hh":     "03",
		"h":      "3",
		"mm":     "04",
		"m":      "4",
		"ss":     "05",
		"s":      "5",
		"SSSSSS": "123456",
		"SSSSS":  "12345",
		"SSSS":   "1234",
		"SSS":    "123",
		"SS":     "12",
		"S":      "1",
		"X":      "1718031845.123456",
		"x":      "1718031845123456",
		"ZZZ":    "UTC",
		"ZZ":     "+00:00",
		"Z":      "+0000",
		"a":      "pm",
		"A":      "PM",
		"W":      "2024-W24-1",
	} {
		assert.Equal(t, expected, instant.Format(token), token)
	}
	assert.Equal(t, "2024-06-10 15:04:05+00:00", instant.Format(DefaultFormat))
	assert.Equal(t, "Today is Monday, the 10th of June", instant.Format("[Today is] dddd, [the] Do [of] MMMM"))
	assert.Equal(t, "10.06.2024 @ 15h", instant.Format("DD.MM.YYYY @ HH[h]"))
	assert.Equal(t, "005", MustNew(2024, 1, 5, 0, 0, 0, 0, "UTC").Format("DDDD"))
	assert.Equal(t, "0987", MustNew(987, 1, 5, 0, 0, 0, 0, "UTC").Format("YYYY"))
	assert.Equal(t, "1718031845", MustNew(2024, 6, 10, 15, 4, 5, 0, "UTC").Format("X"))
	assert.Equal(t, "1718031845.5", MustNew(2024, 6, 10, 15, 4, 5, 500000, "UTC").Format("X"))
	assert.Equal(t, "-0.5", MustNew(1969, 12, 31, 23, 59, 59, 500000, "UTC").Format("X"))
	assert.Equal(t, "-1", MustNew(1969, 12, 31, 23, 59, 59, 0, "UTC").Format("X"))
	assert.Equal(t, "-86399.000001", MustNew(1969, 12, 31, 0, 0, 0, 999999, "UTC").Format("X"))
}

func TestFormatFractionPrecision(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 10, 15, 4, 5, 7089, "UTC")
	for token, expected := range map[string]string{
		"SSSSSS": "007089",
		"SSSSS":  "00708",
		"SSSS":   "0070",
		"SSS":    "007",
		"SS":     "00",
		"S":      "0",
	} {
		assert.Equal(t, expected, instant.Format(token), token)
	}
}

func TestFormatTwelveHourClock(t *testing.T) {
	t.Parallel()
	for hour, expected := range map[int][2]string{
		0:  {"12", "am"},
		1:  {"01", "am"},
		11: {"11", "am"},
		12: {"12", "pm"},
		13: {"01", "pm"},
		23: {"11", "pm"},
	} {
		instant := MustNew(2024, 6, 10, hour, 0, 0, 0, "UTC")
		assert.Equal(t, expected[0], instant.Format("hh"), hour)
		assert.Equal(t, expected[1], instant.Format("a"), hour)
	}
	assert.Equal(t, "12", MustNew(2024, 6, 10, 0, 0, 0, 0, "UTC").Format("h"))
	assert.Equal(t, "11", MustNew(2024, 6, 10, 23, 0, 0, 0, "UTC").Format("h"))
}

func TestFormatOrdinalDay(t *testing.T) {
	t.Parallel()
	for day, expected := range map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 31: "31st",
	} {
		assert.Equal(t, expected, MustNew(2024, 1, day, 0, 0, 0, 0, "UTC").Format("Do"))
	}
}

func TestFormatZones(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 10, 15, 4, 5, 0, "+05:30")
	assert.Equal(t, "+05:30 +0530 +0530", instant.Format("ZZ Z ZZZ"))
	instant = MustNew(2024, 6, 10, 15, 4, 5, 0, "-03:30")
	assert.Equal(t, "-03:30 -0330", instant.Format("ZZ Z"))
	instant = MustNew(2024, 1, 10, 15, 4, 5, 0, "Europe/Berlin")
	assert.Equal(t, "+01:00 CET", instant.Format("ZZ ZZZ"))
	instant = MustNew(2024, 6, 10, 15, 4, 5, 0, "Europe/Berlin")
	assert.Equal(t, "+02:00 CEST", instant.Format("ZZ ZZZ"))
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()
	for _, instant := range []Instant{
		MustNew(2024, 6, 10, 15, 4, 5, 123456, "UTC"),
		MustNew(2024, 6, 10, 15, 4, 5, 1, "+05:30"),
		MustNew(1999, 12, 31, 23, 59, 59, 999999, "-03:30"),
		MustNew(2024, 3, 31, 3, 0, 0, 0, "Europe/Berlin"),
	} {
		rendered := instant.Format("YYYY-MM-DDTHH:mm:ss.SSSSSSZZ")
		parsed, err := ParseStamp(rendered, nil)
		require.NoError(t, err, rendered)
		assert.True(t, parsed.Equal(instant), rendered)
		assert.Equal(t, instant.UTCOffset(), parsed.UTCOffset(), rendered)
	}
}

func TestISOFormat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2024-06-10T15:04:05.123456+00:00", MustNew(2024, 6, 10, 15, 4, 5, 123456, "UTC").ISOFormat())
	assert.Equal(t, "2024-06-10T15:04:05+05:30", MustNew(2024, 6, 10, 15, 4, 5, 0, "Asia/Kolkata").ISOFormat())
	assert.Equal(t, "2024-06-10T15:04:05.000100-04:00", MustNew(2024, 6, 10, 15, 4, 5, 100, "America/New_York").String())
	assert.Equal(t, "0001-01-01T00:00:00+00:00", Instant{}.String())
}

func TestFileAndSmartFormat(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 10, 15, 4, 5, 0, "UTC")
	midnight := MustNew(2024, 6, 10, 0, 0, 0, 0, "UTC")
	assert.Equal(t, "20240610150405", instant.FileFormat(true))
	assert.Equal(t, "20240610", instant.FileFormat(false))
	assert.Equal(t, "2024-06-10 15:04:05", instant.SmartFormat(DefaultSmartOptions()))
	assert.Equal(t, "2024-06-10", midnight.SmartFormat(DefaultSmartOptions()))
	withZone := DefaultSmartOptions()
	withZone.WithZone = true
	assert.Equal(t, "2024-06-10 15:04:05+00:00", instant.SmartFormat(withZone))
	assert.Equal(t, "2024-06-10", midnight.SmartFormat(withZone))
	assert.Equal(t, "2024/06/10T15.04.05", instant.SmartFormat(SmartOptions{DateSeparator: "/", Separator: "T", TimeSeparator: "."}))
	assert.Equal(t, "20240610150405", instant.SmartFormat(SmartOptions{}))
}

func TestHumanize(t *testing.T) {
	t.Parallel()
	instant := MustNew(2024, 6, 10, 15, 4, 5, 0, "UTC")
	for delta, expected := range map[Delta]string{
		{Days: 3}:     "3 days ago",
		{Hours: -2}:   "in 2 hours",
		{Minutes: 1}:  "1 minute ago",
		{Seconds: 10}: "10 seconds ago",
		{Seconds: -1}: "in 1 second",
		{Days: 400}:   "1 year ago",
		{Days: -65}:   "in 2 months",
		{}:            "in 0 seconds",
	} {
		assert.Equal(t, expected, instant.HumanizeFrom(instant.Shift(delta)), "%+v", delta)
	}
	assert.Equal(t, "in 1 day", MustNew(2024, 6, 11, 15, 4, 5, 0, "UTC").HumanizeFrom(MustNew(2024, 6, 10, 12, 0, 0, 0, "Europe/Berlin")))
	assert.Contains(t, MustNew(2000, 1, 1, 0, 0, 0, 0, "UTC").Humanize(), "years ago")
}
