// SPDX-License-Identifier: ice License 1.0

package xlate

import (
	"regexp"
	stdlibtime "time"

	"github.com/ice-blockchain/timestamp/time"
	"github.com/ice-blockchain/timestamp/tz"
)

// Public API.

const (
	From Direction = iota
	To
)

type (
	// Direction tells which end of a relative rule is wanted: "yesterday" starts at its From and ends at its To.
	Direction uint8

	// Resolver turns relative rules ("yesterday", "lastmonth", "-3days", "bot"...) and absolute stamps into instants.
	Resolver interface {
		Resolve(rule string, direction Direction) (time.Instant, error)
	}

	Option func(*resolver)
)

// Private API.

type (
	resolver struct {
		clock func() stdlibtime.Time
		cfg   *config
		zone  tz.Zone
	}
	config struct {
		TimestampXlate struct {
			Timezone        string `yaml:"timezone" mapstructure:"timezone"`
			BeginningOfTime int    `yaml:"beginningOfTime" mapstructure:"beginningOfTime"`
			LookbackDays    int    `yaml:"lookbackDays" mapstructure:"lookbackDays"`
		} `yaml:"timestamp/xlate" mapstructure:"timestamp/xlate"` //nolint:tagliatelle // .
	}
	// rule resolves one keyword, now being the current instant in the configured timezone.
	rule func(r *resolver, now time.Instant, direction Direction) (time.Instant, error)
)

//nolint:gochecknoglobals // Compiled once, read only afterwards.
var (
	relativePattern = regexp.MustCompile(`^(-?\d+)\s*(second|minute|hour|day|week|month|quarter|year)s?$`)
)
