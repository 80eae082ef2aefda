package metrics

// Outcome classifies the result of a planner operation.
type Outcome string

const (
	// OutcomeOK means the operation changed the plan.
	OutcomeOK Outcome = "ok"
	// OutcomeRejected means the operation was refused and the plan is unchanged.
	OutcomeRejected Outcome = "rejected"
	// OutcomeError means the operation failed with a contract violation.
	OutcomeError Outcome = "error"
)

// OperationEvent records one planner call.
type OperationEvent struct {
	PlannerID string
	Op        string
	Outcome   Outcome
}

// MetricsSink records planner operations.
type MetricsSink interface {
	RecordOperation(ev OperationEvent) error
}

// ResizeEvent records a reallocation of the planner's storage.
type ResizeEvent struct {
	PlannerID string
	From      int
	To        int
}

// Direction returns "grow" or "shrink".
func (e ResizeEvent) Direction() string {
	if e.To > e.From {
		return "grow"
	}
	return "shrink"
}

// ResizeRecorder is implemented by sinks able to record storage resizes.
type ResizeRecorder interface {
	RecordResize(ev ResizeEvent) error
}

// SizeRecorder is implemented by sinks tracking the number of events and the
// storage capacity.
type SizeRecorder interface {
	RecordSize(plannerID string, events, capacity int) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordOperation(OperationEvent) error { return nil }
func (NopSink) RecordResize(ResizeEvent) error       { return nil }
func (NopSink) RecordSize(string, int, int) error    { return nil }
