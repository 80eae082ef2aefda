// Package interval implements a labelled start/end span within one day.
//
// Intervals are ordered by their start time only: two intervals starting at
// the same minute compare equal whatever their end or label. ByStart exposes
// that weak order for sorted containers.
package interval

import (
	"github.com/cockroachdb/errors"

	"github.com/kilianp07/dayplanner/core/clock"
	"github.com/kilianp07/dayplanner/core/errdefs"
)

// Interval is a scheduled event. End is never before Start.
type Interval struct {
	start clock.Time
	end   clock.Time
	label string
}

// New returns an unlabelled interval.
func New(start, end clock.Time) (*Interval, error) {
	return NewLabeled(start, end, "")
}

// NewLabeled returns an interval carrying label.
func NewLabeled(start, end clock.Time, label string) (*Interval, error) {
	if end.Compare(start) < 0 {
		return nil, errdefs.InvalidArgumentf("end %s before start %s", end, start)
	}
	return &Interval{start: start, end: end, label: label}, nil
}

// Start returns the start time.
func (iv *Interval) Start() clock.Time { return iv.start }

// End returns the end time.
func (iv *Interval) End() clock.Time { return iv.end }

// Label returns the free-text label, possibly empty.
func (iv *Interval) Label() string { return iv.label }

// Duration returns the length in minutes.
func (iv *Interval) Duration() int { return iv.start.DurationTo(iv.end) }

// Clone returns an independent copy.
func (iv *Interval) Clone() *Interval {
	c := *iv
	return &c
}

// Compare orders iv and other by start time.
func (iv *Interval) Compare(other *Interval) (int, error) {
	if other == nil {
		return 0, errors.Wrap(errdefs.ErrInvalidArgument, "compare against nil interval")
	}
	return iv.start.Compare(other.start), nil
}

// ByStart is the comparator used to keep intervals sorted. Intervals with the
// same start are equivalent.
func ByStart(a, b *Interval) int {
	return a.start.Compare(b.start)
}

// Reschedule moves the interval to begin at newStart, keeping its duration.
// It reports false and leaves the interval untouched when the shifted end
// would run past the end of the day.
func (iv *Interval) Reschedule(newStart clock.Time) bool {
	newEnd, ok, err := newStart.PlusMinutes(iv.Duration())
	if err != nil || !ok {
		return false
	}
	iv.start, iv.end = newStart, newEnd
	return true
}

// Resize sets the duration to minutes, moving only the end. It reports false
// for a negative duration or one that would run past the end of the day.
func (iv *Interval) Resize(minutes int) bool {
	if minutes < 0 {
		return false
	}
	newEnd, ok, err := iv.start.PlusMinutes(minutes)
	if err != nil || !ok {
		return false
	}
	iv.end = newEnd
	return true
}

// Relabel replaces the label.
func (iv *Interval) Relabel(label string) { iv.label = label }

// String renders "HH:MM-HH:MM/label".
func (iv *Interval) String() string {
	return iv.start.String() + "-" + iv.end.String() + "/" + iv.label
}
