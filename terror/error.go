// SPDX-License-Identifier: ice License 1.0

package terror

import (
	"github.com/pkg/errors"
)

func New(err error, data map[string]any) *Err {
	return &Err{error: err, Data: data}
}

// Wrapf annotates one of the sentinel errors with a message and the data that caused it.
func Wrapf(sentinel error, data map[string]any, format string, args ...any) *Err {
	return New(errors.Wrapf(sentinel, format, args...), data)
}

func As(err error) *Err {
	tErr := new(Err)
	if ok := errors.As(err, tErr); ok {
		return tErr
	}

	return nil
}

// Value returns the data recorded under key, if any.
func (e *Err) Value(key string) (any, bool) {
	if e == nil || e.Data == nil {
		return nil, false
	}
	val, found := e.Data[key]

	return val, found
}

func (e *Err) Is(er error) bool {
	return errors.Is(er, e.error)
}

func (e *Err) Unwrap() error {
	return e.error
}

func (e *Err) As(err any) bool {
	o, ok := err.(*Err)
	if ok {
		*o = *e
	}

	return ok
}
