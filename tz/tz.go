// SPDX-License-Identifier: ice License 1.0

package tz

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	stdlibtime "time"
	_ "time/tzdata" // The IANA database has to be available on hosts without /usr/share/zoneinfo.
	"unicode"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/timestamp/log"
	"github.com/ice-blockchain/timestamp/terror"
)

//nolint:gochecknoglobals // Process wide cache of the tz database lookups, filled lazily.
var locations sync.Map

// Resolve normalizes a specifier into a Zone.
// Supported specifiers are nil, strings ("UTC", "local", "+05:30", "Europe/Berlin"), Zone, *Zone,
// *time.Location and int offsets in seconds.
// If safe is set, anything that cannot be resolved yields UTC instead of an error.
func Resolve(specifier any, safe bool) (Zone, error) {
	zone, err := resolve(specifier)
	if err != nil {
		if !safe {
			return Zone{}, err
		}
		log.Warn("falling back to UTC", "specifier", specifier, "reason", err)

		return UTC, nil
	}

	return zone, nil
}

func MustResolve(specifier any) Zone {
	zone, err := Resolve(specifier, false)
	log.Panic(err) //nolint:revive // That's the point.

	return zone
}

func Fixed(offset int) Zone {
	return Zone{kind: KindFixed, offset: offset, loc: stdlibtime.FixedZone("", offset)}
}

// FromLocation maps a stdlib location onto a Zone.
// Locations that are not part of the tz database (the ones time.Parse creates for numeric offsets, for example)
// become fixed zones, using the offset they have at the provided instant.
func FromLocation(loc *stdlibtime.Location, at stdlibtime.Time) Zone {
	switch {
	case loc == nil || loc == stdlibtime.UTC:
		return UTC
	case loc == stdlibtime.Local:
		return Local
	}
	if name := loc.String(); name != "" {
		if zone, err := named(name); err == nil {
			return zone
		}
	}
	_, offset := at.In(loc).Zone()

	return Fixed(offset)
}

//nolint:funlen,revive // A flat type switch reads better than splitting it.
func resolve(specifier any) (Zone, error) {
	switch spec := specifier.(type) {
	case nil:
		return UTC, nil
	case Zone:
		return spec, nil
	case *Zone:
		if spec == nil {
			return UTC, nil
		}

		return *spec, nil
	case *stdlibtime.Location:
		return FromLocation(spec, stdlibtime.Now()), nil
	case int:
		return Fixed(spec), nil
	case string:
		return parse(spec)
	default:
		return Zone{}, terror.Wrapf(terror.ErrInvalidTimezone, map[string]any{"specifier": specifier},
			"unsupported timezone specifier type %T", specifier)
	}
}

func parse(spec string) (Zone, error) {
	switch spec {
	case "", "utc", "UTC", "z", "Z":
		return UTC, nil
	case "local":
		return Local, nil
	}
	if match := offsetPattern.FindStringSubmatch(spec); match != nil {
		hours, _ := strconv.Atoi(match[2])   //nolint:errcheck // The pattern guarantees digits.
		minutes, _ := strconv.Atoi(match[3]) //nolint:errcheck // Empty when absent, which is 0.
		offset := hours*int(stdlibtime.Hour/stdlibtime.Second) + minutes*int(stdlibtime.Minute/stdlibtime.Second)
		if match[1] == "-" {
			offset = -offset
		}

		return Fixed(offset), nil
	}

	return named(spec)
}

func named(name string) (Zone, error) {
	if cached, found := locations.Load(name); found {
		return cached.(Zone), nil //nolint:forcetypeassert // We only store Zones.
	}
	loc, err := stdlibtime.LoadLocation(name)
	if err != nil {
		return Zone{}, terror.New(errors.Wrapf(terror.ErrInvalidTimezone, "failed to load location %q: %v", name, err),
			map[string]any{"specifier": name})
	}
	var zone Zone
	switch loc {
	case stdlibtime.UTC:
		zone = UTC
	case stdlibtime.Local:
		zone = Local
	default:
		zone = Zone{kind: KindNamed, name: loc.String(), loc: loc}
	}
	actual, _ := locations.LoadOrStore(name, zone)

	return actual.(Zone), nil //nolint:forcetypeassert // We only store Zones.
}

// Extract is the inverse of Resolve: it returns the canonical label of the zone.
// Fixed zones are labeled by their offset in seconds, named zones by the path components that carry
// an upper case letter ("posix/Europe/Berlin" becomes "Europe/Berlin").
func Extract(zone Zone) string {
	switch zone.kind {
	case KindUTC:
		return "UTC"
	case KindLocal:
		return "local"
	case KindFixed:
		return strconv.Itoa(zone.offset)
	case KindNamed:
		parts := strings.Split(zone.name, "/")
		kept := make([]string, 0, len(parts))
		for _, part := range parts {
			if strings.IndexFunc(part, unicode.IsUpper) >= 0 {
				kept = append(kept, part)
			}
		}
		if len(kept) == 0 {
			return unknown
		}

		return strings.Join(kept, "/")
	default:
		return unknown
	}
}

func (z Zone) Kind() Kind {
	return z.kind
}

// Offset is the fixed offset in seconds. It is only meaningful for KindFixed and KindUTC.
func (z Zone) Offset() int {
	return z.offset
}

func (z Zone) Name() string {
	return z.name
}

func (z Zone) Location() *stdlibtime.Location {
	if z.loc == nil {
		return stdlibtime.UTC
	}

	return z.loc
}

// Spec returns a specifier that Resolve maps back onto an equal Zone.
func (z Zone) Spec() string {
	switch z.kind {
	case KindLocal:
		return "local"
	case KindFixed:
		sign, offset := '+', z.offset
		if offset < 0 {
			sign, offset = '-', -offset
		}
		minutes := offset / int(stdlibtime.Minute/stdlibtime.Second)

		return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60) //nolint:gomnd // Minutes per hour.
	case KindNamed:
		return z.name
	default:
		return "UTC"
	}
}

func (z Zone) Equal(other Zone) bool {
	return z.kind == other.kind && z.offset == other.offset && z.name == other.name
}

func (z Zone) String() string {
	return Extract(z)
}
