// Package planner keeps the events of one day in start-time order and offers
// index-addressed edits over them.
//
// Edits that may legitimately fail, such as moving an event past midnight or
// addressing an index that does not exist, report false and leave the plan
// unchanged. Only contract violations (a nil event, exhausted storage) are
// returned as errors.
package planner

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/kilianp07/dayplanner/core/clock"
	"github.com/kilianp07/dayplanner/core/errdefs"
	"github.com/kilianp07/dayplanner/core/interval"
	"github.com/kilianp07/dayplanner/core/logger"
	"github.com/kilianp07/dayplanner/core/metrics"
	"github.com/kilianp07/dayplanner/core/sorted"
)

// Planner owns the sorted events of a day.
type Planner struct {
	id     string
	events *sorted.Array[*interval.Interval]
	log    logger.Logger
	sink   metrics.MetricsSink
}

// Option configures a Planner.
type Option func(*options)

type options struct {
	capacity int
	log      logger.Logger
	sink     metrics.MetricsSink
}

// WithCapacity sets the initial storage capacity (at least 2).
func WithCapacity(n int) Option { return func(o *options) { o.capacity = n } }

// WithLogger sets the logger. The default discards output.
func WithLogger(l logger.Logger) Option { return func(o *options) { o.log = l } }

// WithMetrics sets the metrics sink. The default records nothing.
func WithMetrics(s metrics.MetricsSink) Option { return func(o *options) { o.sink = s } }

// New returns an empty planner.
func New(opts ...Option) (*Planner, error) {
	o := options{capacity: sorted.DefaultCapacity, log: logger.Nop{}, sink: metrics.NopSink{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop{}
	}
	if o.sink == nil {
		o.sink = metrics.NopSink{}
	}
	events, err := sorted.NewWithCapacity(interval.ByStart, o.capacity)
	if err != nil {
		return nil, errors.Wrap(err, "planner")
	}
	p := &Planner{id: uuid.NewString(), events: events, log: o.log, sink: o.sink}
	events.OnResize(p.recordResize)
	p.recordSize()
	return p, nil
}

// ID identifies the planner in logs and metrics.
func (p *Planner) ID() string { return p.id }

// Size returns the number of events.
func (p *Planner) Size() int { return p.events.Len() }

// AddEvent inserts ev after any event with the same start.
func (p *Planner) AddEvent(ev *interval.Interval) error {
	if ev == nil {
		p.record("add", metrics.OutcomeError)
		return errors.Wrap(errdefs.ErrInvalidArgument, "add event: nil event")
	}
	if err := p.events.Insert(ev); err != nil {
		p.record("add", metrics.OutcomeError)
		p.log.Errorf("add event %s: %v", ev, err)
		return errors.Wrap(err, "add event")
	}
	p.log.Debugw("event added", map[string]any{"planner": p.id, "event": ev.String(), "size": p.Size()})
	p.record("add", metrics.OutcomeOK)
	p.recordSize()
	return nil
}

// MoveEvent reschedules the event at index to begin at newStart, keeping its
// duration, and repositions it so the plan stays sorted. It reports false if
// index is out of range or the event would run past midnight.
func (p *Planner) MoveEvent(index int, newStart clock.Time) bool {
	ev, ok := p.GetEvent(index)
	if !ok || !ev.Reschedule(newStart) {
		p.record("move", metrics.OutcomeRejected)
		return false
	}
	// The start changed, so the event may no longer belong at index. Try the
	// same slot first and fall back to a full sorted insert.
	if _, err := p.events.Delete(index); err != nil {
		p.log.Errorf("move event %d: %v", index, err)
		p.record("move", metrics.OutcomeError)
		return false
	}
	placed, err := p.events.InsertAt(index, ev)
	if err == nil && !placed {
		p.log.Debugw("event moved out of its slot", map[string]any{"planner": p.id, "index": index, "event": ev.String()})
		err = p.events.Insert(ev)
	}
	if err != nil {
		p.log.Errorf("move event %d: reinsert %s: %v", index, ev, err)
		p.record("move", metrics.OutcomeError)
		return false
	}
	p.record("move", metrics.OutcomeOK)
	p.recordSize()
	return true
}

// ChangeDuration sets the duration of the event at index to minutes.
func (p *Planner) ChangeDuration(index, minutes int) bool {
	ev, ok := p.GetEvent(index)
	if !ok || !ev.Resize(minutes) {
		p.record("resize", metrics.OutcomeRejected)
		return false
	}
	p.record("resize", metrics.OutcomeOK)
	return true
}

// ChangeDescription relabels the event at index.
func (p *Planner) ChangeDescription(index int, label string) bool {
	ev, ok := p.GetEvent(index)
	if !ok {
		p.record("relabel", metrics.OutcomeRejected)
		return false
	}
	ev.Relabel(label)
	p.record("relabel", metrics.OutcomeOK)
	return true
}

// RemoveEvent deletes the event at index.
func (p *Planner) RemoveEvent(index int) bool {
	if index < 0 || index >= p.Size() {
		p.record("remove", metrics.OutcomeRejected)
		return false
	}
	ev, err := p.events.Delete(index)
	if err != nil {
		p.log.Errorf("remove event %d: %v", index, err)
		p.record("remove", metrics.OutcomeError)
		return false
	}
	p.log.Debugw("event removed", map[string]any{"planner": p.id, "event": ev.String(), "size": p.Size()})
	p.record("remove", metrics.OutcomeOK)
	p.recordSize()
	return true
}

// GetEvent returns the event at index. The returned event is owned by the
// planner; mutate it only through the planner so ordering is maintained.
func (p *Planner) GetEvent(index int) (*interval.Interval, bool) {
	if index < 0 || index >= p.Size() {
		return nil, false
	}
	ev, err := p.events.Get(index)
	if err != nil {
		return nil, false
	}
	return ev, true
}

// Events returns copies of the events in order.
func (p *Planner) Events() []*interval.Interval {
	vals := p.events.Values()
	for i, v := range vals {
		vals[i] = v.Clone()
	}
	return vals
}

// String lists the events one per line as "[i]HH:MM-HH:MM/label".
func (p *Planner) String() string {
	var b strings.Builder
	for i, ev := range p.events.Values() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
		b.WriteString(ev.String())
	}
	return b.String()
}

func (p *Planner) record(op string, outcome metrics.Outcome) {
	if err := p.sink.RecordOperation(metrics.OperationEvent{PlannerID: p.id, Op: op, Outcome: outcome}); err != nil {
		p.log.Warnf("record %s: %v", op, err)
	}
}

func (p *Planner) recordResize(from, to int) {
	rec, ok := p.sink.(metrics.ResizeRecorder)
	if !ok {
		return
	}
	if err := rec.RecordResize(metrics.ResizeEvent{PlannerID: p.id, From: from, To: to}); err != nil {
		p.log.Warnf("record resize: %v", err)
	}
}

func (p *Planner) recordSize() {
	rec, ok := p.sink.(metrics.SizeRecorder)
	if !ok {
		return
	}
	if err := rec.RecordSize(p.id, p.events.Len(), p.events.Cap()); err != nil {
		p.log.Warnf("record size: %v", err)
	}
}
