// SPDX-License-Identifier: ice License 1.0

package terror

import (
	"github.com/pkg/errors"
)

// Public API.

var (
	ErrInvalidComponent            = errors.New("invalid component")
	ErrInvalidTimezone             = errors.New("invalid timezone")
	ErrUnsupportedFrame            = errors.New("unsupported frame")
	ErrUnsupportedRule             = errors.New("unsupported rule")
	ErrUnsupportedReplacementField = errors.New("unsupported replacement field")
	ErrInvalidBounds               = errors.New("invalid bounds")
	ErrInvalidTimestamp            = errors.New("invalid timestamp")
	ErrInvalidOrdinal              = errors.New("invalid ordinal")
	ErrMissingBound                = errors.New("either end or limit is required")
	ErrInvalidInterval             = errors.New("interval must be a positive integer")
	ErrUnparsable                  = errors.New("unparsable value")
)

type (
	// Err is an error that carries the offending input alongside it,
	// so callers can report what was rejected without parsing messages.
	Err struct {
		error
		Data map[string]any `json:"data"`
	}
)
