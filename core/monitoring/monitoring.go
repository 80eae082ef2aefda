// Package monitoring forwards unexpected errors to an error tracker.
//
// Only fatal errors are reported. Refused edits are ordinary outcomes and
// never reach the monitor.
package monitoring

import (
	"time"

	"github.com/kilianp07/dayplanner/core/errdefs"
)

// Monitor defines methods used for error reporting.
type Monitor interface {
	CaptureException(err error, tags map[string]string)
	Recover()
	Flush(timeout time.Duration)
}

type NopMonitor struct{}

func (NopMonitor) CaptureException(error, map[string]string) {}
func (NopMonitor) Recover()                                  {}
func (NopMonitor) Flush(time.Duration)                       {}

var current Monitor = NopMonitor{}

// Init sets the global monitor. A nil monitor is ignored.
func Init(m Monitor) {
	if m != nil {
		current = m
	}
}

// Current returns the global monitor.
func Current() Monitor { return current }

// CaptureException records err with tags, adding the errdefs kind of err
// under "kind" when it has one.
func CaptureException(err error, tags map[string]string) {
	if err == nil {
		return
	}
	if kind := errdefs.Kind(err); kind != "" {
		merged := make(map[string]string, len(tags)+1)
		for k, v := range tags {
			merged[k] = v
		}
		merged["kind"] = kind
		tags = merged
	}
	current.CaptureException(err, tags)
}

// Recover reports a panic in the calling goroutine and re-panics.
func Recover() { current.Recover() }

// Flush waits up to d for buffered reports to be sent.
func Flush(d time.Duration) { current.Flush(d) }
