// SPDX-License-Identifier: ice License 1.0

package time

import (
	"context"
	"database/sql/driver"
	"strconv"
	stdlibtime "time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/timestamp/terror"
	"github.com/ice-blockchain/timestamp/tz"
)

// MarshalText renders the zero Instant, 0001-01-01T00:00:00 UTC, as empty.
func (i Instant) MarshalText() ([]byte, error) {
	if i.IsZero() {
		return []byte{}, nil
	}

	return []byte(i.ISOFormat()), nil
}

func (i *Instant) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*i = Instant{}

		return nil
	}
	instant, err := Parse(string(text), tz.UTC)
	if err != nil {
		return errors.Wrapf(err, "invalid time format: %v", string(text))
	}
	*i = instant

	return nil
}

func (i Instant) MarshalBinary() ([]byte, error) {
	return i.MarshalText()
}

func (i *Instant) UnmarshalBinary(data []byte) error {
	return i.UnmarshalText(data)
}

// MarshalJSON renders the zero Instant, 0001-01-01T00:00:00 UTC, as null.
func (i Instant) MarshalJSON(_ context.Context) ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}

	return []byte(strconv.Quote(i.ISOFormat())), nil
}

// UnmarshalJSON accepts null, ISO strings, anything else Parse does, and bare numeric timestamps
// in seconds, milliseconds or microseconds.
func (i *Instant) UnmarshalJSON(_ context.Context, data []byte) error {
	raw := string(data)
	switch {
	case raw == "null" || raw == `""` || raw == "":
		*i = Instant{}

		return nil
	case raw[0] != '"':
		timestamp, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid timestamp: %v", raw)
		}
		instant, err := FromTimestamp(timestamp, tz.UTC)
		if err != nil {
			return errors.Wrapf(err, "invalid timestamp: %v", raw)
		}
		*i = instant

		return nil
	default:
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid json string: %v", raw)
		}

		return i.UnmarshalText([]byte(unquoted))
	}
}

// EncodeMsgpack writes the instant as [unix microseconds, zone specifier], so named zones survive the round trip.
func (i Instant) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil { //nolint:gomnd // Micros and zone.
		return errors.Wrap(err, "failed to EncodeArrayLen")
	}
	if err := enc.EncodeInt(i.UnixMicro()); err != nil {
		return errors.Wrap(err, "failed to EncodeInt")
	}

	return errors.Wrap(enc.EncodeString(i.zone.Spec()), "failed to EncodeString")
}

func (i *Instant) DecodeMsgpack(dec *msgpack.Decoder) error {
	if _, err := dec.DecodeArrayLen(); err != nil {
		return errors.Wrap(err, "failed to Instant.DecodeMsgpack.DecodeArrayLen")
	}
	micros, err := dec.DecodeInt64()
	if err != nil {
		return errors.Wrap(err, "failed to Instant.DecodeMsgpack.DecodeInt64")
	}
	spec, err := dec.DecodeString()
	if err != nil {
		return errors.Wrap(err, "failed to Instant.DecodeMsgpack.DecodeString")
	}
	zone, err := tz.Resolve(spec, true)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve timezone %v", spec)
	}
	*i = fromUnixMicro(micros, zone)

	return nil
}

func (i *Instant) Scan(src any) error {
	var (
		instant Instant
		err     error
	)
	switch val := src.(type) {
	case nil:
	case stdlibtime.Time:
		instant = FromStdlib(val)
	case string:
		instant, err = Parse(val, tz.UTC)
	case []byte:
		instant, err = Parse(string(val), tz.UTC)
	case int64:
		instant, err = FromTimestamp(float64(val), tz.UTC)
	case float64:
		instant, err = FromTimestamp(val, tz.UTC)
	default:
		err = terror.Wrapf(terror.ErrUnparsable, map[string]any{"value": src}, "cannot scan %T into an Instant", src)
	}
	if err != nil {
		return errors.Wrap(err, "failed to Instant.Scan")
	}
	*i = instant

	return nil
}

func (i Instant) Value() (driver.Value, error) {
	if i.IsZero() {
		return nil, nil //nolint:nilnil // NULL.
	}

	return i.t, nil
}

func (i *Instant) ScanTimestamptz(v pgtype.Timestamptz) error {
	switch {
	case !v.Valid:
		*i = Instant{}
	case v.InfinityModifier != pgtype.Finite:
		return terror.Wrapf(terror.ErrInvalidTimestamp, map[string]any{"infinity": v.InfinityModifier.String()},
			"cannot scan %v into an Instant", v.InfinityModifier)
	default:
		*i = FromStdlib(v.Time)
	}

	return nil
}

func (i Instant) TimestamptzValue() (pgtype.Timestamptz, error) {
	if i.IsZero() {
		return pgtype.Timestamptz{}, nil
	}

	return pgtype.Timestamptz{Time: i.t, Valid: true}, nil
}
