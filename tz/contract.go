// SPDX-License-Identifier: ice License 1.0

package tz

import (
	"regexp"
	stdlibtime "time"
)

// Public API.

const (
	KindUTC Kind = iota
	KindLocal
	KindFixed
	KindNamed
)

type (
	// Kind tells which of the four canonical shapes a Zone has.
	Kind uint8

	// Zone is the resolved, comparison-ready form of a timezone specifier.
	// The zero value is UTC. Zones are immutable and safe to share.
	Zone struct {
		loc    *stdlibtime.Location
		name   string
		offset int
		kind   Kind
	}
)

//nolint:gochecknoglobals // Immutable canonical zones.
var (
	UTC   = Zone{}
	Local = Zone{kind: KindLocal, loc: stdlibtime.Local}
)

// Private API.

const (
	unknown = "unknown"
)

//nolint:gochecknoglobals // Compiled once, read only afterwards.
var (
	offsetPattern = regexp.MustCompile(`^([+-])?(\d{2})(?::?(\d{2}))?$`)
)
