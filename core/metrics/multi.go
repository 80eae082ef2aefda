package metrics

// MultiSink fans records out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordOperation forwards the event to all sinks, returning the first error.
func (m *MultiSink) RecordOperation(ev OperationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordOperation(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordResize forwards to sinks implementing ResizeRecorder.
func (m *MultiSink) RecordResize(ev ResizeEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ResizeRecorder); ok {
			if err := rec.RecordResize(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordSize forwards to sinks implementing SizeRecorder.
func (m *MultiSink) RecordSize(plannerID string, events, capacity int) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(SizeRecorder); ok {
			if err := rec.RecordSize(plannerID, events, capacity); err != nil {
				return err
			}
		}
	}
	return nil
}
