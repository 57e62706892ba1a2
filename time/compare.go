// SPDX-License-Identifier: ice License 1.0

package time

import (
	"encoding/binary"
	stdlibtime "time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ice-blockchain/timestamp/terror"
)

func (Instant) operand()       {}
func (Date) operand()          {}
func (NaiveDateTime) operand() {}
func (AwareDateTime) operand() {}
func (ObjectID) operand()      {}
func (UUID) operand()          {}
func (Text) operand()          {}

// Compare evaluates `i <kind> other`.
// Dates are compared with the wall date of i and naive datetimes with its wall clock; everything else is compared
// as a point in time. If other cannot be turned into an instant, Eq is false and Ne is true,
// while the ordering comparisons return the error.
func (i Instant) Compare(kind Comparison, other Operand) (bool, error) {
	cmp, err := i.compare(other)
	if err != nil {
		switch kind {
		case Eq:
			return false, nil
		case Ne:
			return true, nil
		default:
			return false, err
		}
	}
	switch kind {
	case Eq:
		return cmp == 0, nil
	case Ne:
		return cmp != 0, nil
	case Lt:
		return cmp < 0, nil
	case Le:
		return cmp <= 0, nil
	case Gt:
		return cmp > 0, nil
	case Ge:
		return cmp >= 0, nil
	default:
		return false, errors.Errorf("unknown comparison %v", kind)
	}
}

// Cmp returns -1, 0 or +1 depending on whether i is before, at or after other.
func (i Instant) Cmp(other Instant) int {
	return i.t.Compare(other.t)
}

// Equal reports whether both are the same point in time, whatever their zones.
func (i Instant) Equal(other Instant) bool {
	return i.t.Equal(other.t)
}

func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

func (i Instant) After(other Instant) bool {
	return i.t.After(other.t)
}

// IsBetween tells whether i is within start and end, bounds deciding whether the ends are included.
// Dates and naive datetimes are read in the zone of i.
func (i Instant) IsBetween(start, end Operand, bounds Bounds) (bool, error) {
	if err := bounds.validate(); err != nil {
		return false, err
	}
	lower, err := i.resolve(start)
	if err != nil {
		return false, errors.Wrap(err, "invalid start")
	}
	upper, err := i.resolve(end)
	if err != nil {
		return false, errors.Wrap(err, "invalid end")
	}
	afterStart := i.After(lower) || (bounds.includesStart() && i.Equal(lower))
	beforeEnd := i.Before(upper) || (bounds.includesEnd() && i.Equal(upper))

	return afterStart && beforeEnd, nil
}

// Hash is the same for instants that are Equal.
func (i Instant) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(i.UnixMicro())) //nolint:gosec // Bits are hashed as they are.

	return xxh3.Hash(buf[:])
}

func (i Instant) compare(other Operand) (int, error) {
	switch o := other.(type) {
	case Date:
		return compareFields(fields{i.Year(), i.Month(), i.Day()}, fields{o.Year, o.Month, o.Day}), nil
	case NaiveDateTime:
		return compareFields(fieldsOf(i.t), fieldsOf(o.Time)), nil
	default:
		instant, err := i.resolve(other)
		if err != nil {
			return 0, err
		}

		return i.Cmp(instant), nil
	}
}

func (i Instant) resolve(other Operand) (Instant, error) {
	switch o := other.(type) {
	case nil:
		return Instant{}, terror.Wrapf(terror.ErrUnparsable, map[string]any{"value": nil}, "nil operand")
	case Text:
		return Parse(string(o), i.zone)
	default:
		return Get(other, i.zone)
	}
}

func (o ObjectID) instant() Instant {
	return FromStdlib(primitive.ObjectID(o).Timestamp())
}

func (u UUID) instant() (Instant, error) {
	switch id := uuid.UUID(u); id.Version() {
	case 1, 2, 6, 7: //nolint:gomnd // Versions that embed a time.
		sec, nsec := id.Time().UnixTime()

		return FromStdlib(stdlibtime.Unix(sec, nsec).UTC()), nil
	default:
		return Instant{}, terror.Wrapf(terror.ErrUnparsable, map[string]any{"value": id.String()},
			"uuid version %v carries no time", id.Version())
	}
}

func compareFields(a, b fields) int {
	for ix := range a {
		switch {
		case a[ix] < b[ix]:
			return -1
		case a[ix] > b[ix]:
			return 1
		}
	}

	return 0
}
