// SPDX-License-Identifier: ice License 1.0

package time

import (
	"fmt"
	"strconv"
	"strings"
	stdlibtime "time"
)

//nolint:gochecknoglobals // Immutable lookup tables.
var (
	monthNames = [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	tokens = map[string]func(Instant) string{
		"YYYY": func(i Instant) string { return fmt.Sprintf("%04d", i.Year()) },
		"YY":   func(i Instant) string { return fmt.Sprintf("%04d", i.Year())[2:] },
		"MMMM": func(i Instant) string { return monthNames[i.Month()-1] },
		"MMM":  func(i Instant) string { return monthNames[i.Month()-1][:3] },
		"MM":   func(i Instant) string { return fmt.Sprintf("%02d", i.Month()) },
		"M":    func(i Instant) string { return strconv.Itoa(i.Month()) },
		"DDDD": func(i Instant) string { return fmt.Sprintf("%03d", i.YearDay()) },
		"DDD":  func(i Instant) string { return strconv.Itoa(i.YearDay()) },
		"DD":   func(i Instant) string { return fmt.Sprintf("%02d", i.Day()) },
		"D":    func(i Instant) string { return strconv.Itoa(i.Day()) },
		"Do":   func(i Instant) string { return ordinal(i.Day()) },
		"dddd": func(i Instant) string { return weekdayNames[i.Weekday()] },
		"ddd":  func(i Instant) string { return weekdayNames[i.Weekday()][:3] },
		"d":    func(i Instant) string { return strconv.Itoa(i.ISOWeekday()) },
		"HH":   func(i Instant) string { return fmt.Sprintf("%02d", i.Hour()) },
		"H":    func(i Instant) string { return strconv.Itoa(i.Hour()) },
		"hh":   func(i Instant) string { return fmt.Sprintf("%02d", i.hour12()) },
		"h":    func(i Instant) string { return strconv.Itoa(i.hour12()) },
		"mm":   func(i Instant) string { return fmt.Sprintf("%02d", i.Minute()) },
		"m":    func(i Instant) string { return strconv.Itoa(i.Minute()) },
		"ss":   func(i Instant) string { return fmt.Sprintf("%02d", i.Second()) },
		"s":    func(i Instant) string { return strconv.Itoa(i.Second()) },
		"X":    func(i Instant) string { return i.epochSeconds() },
		"x":    func(i Instant) string { return strconv.FormatInt(i.UnixMicro(), 10) },
		"ZZZ":  func(i Instant) string { return i.TZName() },
		"ZZ":   func(i Instant) string { return i.offset(":") },
		"Z":    func(i Instant) string { return i.offset("") },
		"a":    func(i Instant) string { return strings.ToLower(i.meridiem()) },
		"A":    func(i Instant) string { return i.meridiem() },
		"W": func(i Instant) string {
			year, week, weekday := i.ISOCalendar()

			return fmt.Sprintf("%d-W%02d-%d", year, week, weekday)
		},
	}
)

// Format renders the instant with moment-like tokens: YYYY-MM-DD HH:mm:ss.SSSSSS ZZ, Do MMMM, dddd, W, X...
// Text in square brackets is copied as is and so is anything that is not a token.
func (i Instant) Format(pattern string) string {
	return formatPattern.ReplaceAllStringFunc(pattern, func(token string) string {
		if strings.HasPrefix(token, "[") {
			return token[1 : len(token)-1]
		}
		if strings.HasPrefix(token, "S") {
			return i.fraction(len(token))
		}

		return tokens[token](i)
	})
}

// ISOFormat renders YYYY-MM-DDTHH:MM:SS[.ffffff]+HH:MM, the fraction only when there is one.
func (i Instant) ISOFormat() string {
	if i.Microsecond() != 0 {
		return i.Format("YYYY-MM-DDTHH:mm:ss.SSSSSSZZ")
	}

	return i.Format("YYYY-MM-DDTHH:mm:ssZZ")
}

func (i Instant) String() string {
	return i.ISOFormat()
}

// FileFormat renders YYYYMMDD, followed by HHmmss if includeTime, so it can be used in file names.
func (i Instant) FileFormat(includeTime bool) string {
	if includeTime {
		return i.Format("YYYYMMDDHHmmss")
	}

	return i.Format("YYYYMMDD")
}

func DefaultSmartOptions() SmartOptions {
	return SmartOptions{DateSeparator: "-", Separator: " ", TimeSeparator: ":"}
}

// SmartFormat renders only the date when the clock is at midnight, the date and time otherwise.
func (i Instant) SmartFormat(opts SmartOptions) string {
	pattern := "YYYY" + opts.DateSeparator + "MM" + opts.DateSeparator + "DD"
	if i.Hour() == 0 && i.Minute() == 0 && i.Second() == 0 {
		return i.Format(pattern)
	}
	pattern += opts.Separator + "HH" + opts.TimeSeparator + "mm" + opts.TimeSeparator + "ss"
	if opts.WithZone {
		pattern += "ZZ"
	}

	return i.Format(pattern)
}

// Humanize describes the distance to the current time in the largest whole unit: "3 days ago", "in 2 hours".
func (i Instant) Humanize() string {
	return i.HumanizeFrom(Instant{t: stdlibtime.Now(), zone: i.zone})
}

// HumanizeFrom is Humanize relative to ref instead of the current time.
// Months are 30 days and years 365 days long.
func (i Instant) HumanizeFrom(ref Instant) string {
	seconds, template := int64(i.t.Sub(ref.t)/stdlibtime.Second), "in %d %s"
	if ref.After(i) {
		seconds, template = -seconds, "%d %s ago"
	}
	for _, unit := range []struct {
		name    string
		seconds int64
	}{
		{"year", 31_536_000},
		{"month", 2_592_000},
		{"day", 86_400},
		{"hour", 3_600},
		{"minute", 60},
	} {
		if n := seconds / unit.seconds; n >= 1 {
			return fmt.Sprintf(template, n, plural(unit.name, n))
		}
	}

	return fmt.Sprintf(template, seconds, plural("second", seconds))
}

// hour12 leaves noon as 12 and maps midnight to 12 as well.
func (i Instant) hour12() int {
	if hour := i.Hour(); hour > 0 && hour < 13 {
		return hour
	}

	return max(i.Hour()-12, 12-i.Hour()) //nolint:gomnd // |hour-12|.
}

func (i Instant) meridiem() string {
	if i.Hour() < 12 { //nolint:gomnd // Noon.
		return "AM"
	}

	return "PM"
}

// fraction renders the leading digits of the microseconds, S is tenths of a second, SSSSSS microseconds.
func (i Instant) fraction(digits int) string {
	divisor := 1
	for range 6 - digits {
		divisor *= 10
	}

	return fmt.Sprintf("%0*d", digits, i.Microsecond()/divisor)
}

func (i Instant) offset(separator string) string {
	minutes := int(i.UTCOffset() / stdlibtime.Minute)
	sign := "+"
	if minutes < 0 {
		sign, minutes = "-", -minutes
	}

	return fmt.Sprintf("%v%02d%v%02d", sign, minutes/60, separator, minutes%60) //nolint:gomnd // Minutes per hour.
}

func (i Instant) epochSeconds() string {
	micros, sign := i.UnixMicro(), ""
	if micros < 0 {
		micros, sign = -micros, "-"
	}
	seconds := sign + strconv.FormatInt(micros/microsPerSecond, 10)
	if fraction := micros % microsPerSecond; fraction != 0 {
		seconds += strings.TrimRight(fmt.Sprintf(".%06d", fraction), "0")
	}

	return seconds
}

func ordinal(n int) string {
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			return strconv.Itoa(n) + "st"
		case 2: //nolint:gomnd // .
			return strconv.Itoa(n) + "nd"
		case 3: //nolint:gomnd // .
			return strconv.Itoa(n) + "rd"
		}
	}

	return strconv.Itoa(n) + "th"
}

func plural(unit string, n int64) string {
	if n == 1 {
		return unit
	}

	return unit + "s"
}
