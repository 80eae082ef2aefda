// Package errdefs defines the error kinds returned for contract violations
// by the core packages. Callers match them with errors.Is; expected business
// outcomes such as a day overflow are reported as booleans instead.
package errdefs

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument marks a missing or out-of-range argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange marks an index outside the valid positions.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrCapacityExhausted is returned when storage cannot grow any further.
	ErrCapacityExhausted = errors.New("capacity exhausted")
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// IndexOutOfRangef wraps ErrIndexOutOfRange with a formatted message.
func IndexOutOfRangef(format string, args ...any) error {
	return errors.Wrapf(ErrIndexOutOfRange, format, args...)
}

// Kind names the error kind wrapped by err, or returns "" for errors of
// another origin.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, ErrCapacityExhausted):
		return "capacity_exhausted"
	default:
		return ""
	}
}
