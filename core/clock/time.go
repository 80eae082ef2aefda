// Package clock models a time of day restricted to a single day.
// A Time never wraps past 23:59; arithmetic that would cross midnight
// reports a day overflow instead of producing a value.
package clock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kilianp07/dayplanner/core/errdefs"
)

const (
	// HoursPerDay bounds the hour component: valid hours are [0, HoursPerDay).
	HoursPerDay = 24
	// MinutesPerHour bounds the minute component.
	MinutesPerHour = 60
	// NoDuration is returned by DurationTo when the end precedes the start.
	NoDuration = -1
)

// Time is an immutable hour and minute within one day. The zero value is 00:00.
type Time struct {
	hour   int
	minute int
}

// New returns the Time hour:minute.
func New(hour, minute int) (Time, error) {
	if hour < 0 || hour >= HoursPerDay {
		return Time{}, errdefs.InvalidArgumentf("hour %d must be within [0, 23]", hour)
	}
	if minute < 0 || minute >= MinutesPerHour {
		return Time{}, errdefs.InvalidArgumentf("minute %d must be within [0, 59]", minute)
	}
	return Time{hour: hour, minute: minute}, nil
}

// OnHour returns the Time hour:00.
func OnHour(hour int) (Time, error) { return New(hour, 0) }

// MustNew is like New but panics on invalid input.
func MustNew(hour, minute int) Time {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse reads "H", "HH", "H:MM" or "HH:MM".
func Parse(s string) (Time, error) {
	s = strings.TrimSpace(s)
	hs, ms, hasMin := strings.Cut(s, ":")
	if !isDigits(hs) {
		return Time{}, errdefs.InvalidArgumentf("parse time %q", s)
	}
	hour, err := strconv.Atoi(hs)
	if err != nil {
		return Time{}, errdefs.InvalidArgumentf("parse time %q", s)
	}
	minute := 0
	if hasMin {
		if len(ms) != 2 || !isDigits(ms) {
			return Time{}, errdefs.InvalidArgumentf("parse time %q: minutes need two digits", s)
		}
		if minute, err = strconv.Atoi(ms); err != nil {
			return Time{}, errdefs.InvalidArgumentf("parse time %q", s)
		}
	}
	return New(hour, minute)
}

// isDigits reports whether s is non-empty and made of ASCII digits only.
// strconv.Atoi alone would also accept a sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Hour returns the hour in [0, 23].
func (t Time) Hour() int { return t.hour }

// Minute returns the minute in [0, 59].
func (t Time) Minute() int { return t.minute }

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after other.
func (t Time) Compare(other Time) int {
	switch {
	case t.hour < other.hour:
		return -1
	case t.hour > other.hour:
		return 1
	case t.minute < other.minute:
		return -1
	case t.minute > other.minute:
		return 1
	default:
		return 0
	}
}

// DurationTo returns the number of minutes from t to end. When end is before
// t the result is NoDuration; check the ordering rather than the sign.
func (t Time) DurationTo(end Time) int {
	if t.Compare(end) > 0 {
		return NoDuration
	}
	return (end.hour-t.hour)*MinutesPerHour + (end.minute - t.minute)
}

// PlusMinutes returns t shifted forward by d minutes. ok is false when the
// result would fall on or after midnight. A negative d is an error.
func (t Time) PlusMinutes(d int) (res Time, ok bool, err error) {
	if d < 0 {
		return Time{}, false, errdefs.InvalidArgumentf("duration %d must be non-negative", d)
	}
	hour := t.hour + d/MinutesPerHour
	minute := t.minute + d%MinutesPerHour
	if minute >= MinutesPerHour {
		hour++
		minute -= MinutesPerHour
	}
	if hour >= HoursPerDay {
		return Time{}, false, nil
	}
	return Time{hour: hour, minute: minute}, true, nil
}

// String renders t as "HH:MM".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
