// Package metrics defines the sinks a planner reports to. A sink implements
// MetricsSink and, optionally, ResizeRecorder and SizeRecorder; the planner
// checks for the optional interfaces at each call. Sinks are built from
// configuration through NewMetricsSink and combined with NewMultiSink.
package metrics
