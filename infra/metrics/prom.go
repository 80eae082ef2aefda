package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/dayplanner/core/metrics"
)

// PromSink records planner activity in Prometheus metrics.
type PromSink struct {
	operations *prometheus.CounterVec
	resizes    *prometheus.CounterVec
	events     *prometheus.GaugeVec
	capacity   *prometheus.GaugeVec
}

// NewPromSink registers planner metrics on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// PromConfig holds the options of the "prometheus" sink type.
type PromConfig struct {
	// Namespace prefixes the metric names, as in dayplanner_planner_events.
	Namespace string `json:"namespace"`
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	return NewPromSinkWithConfig(reg, PromConfig{})
}

// NewPromSinkWithConfig registers metrics named after cfg on reg.
func NewPromSinkWithConfig(reg prometheus.Registerer, cfg PromConfig) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	operations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "planner_operations_total",
		Help:      "Planner operations by outcome",
	}, []string{"op", "outcome"}))
	if err != nil {
		return nil, err
	}
	resizes, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "planner_resizes_total",
		Help:      "Storage reallocations by direction",
	}, []string{"direction"}))
	if err != nil {
		return nil, err
	}
	events, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "planner_events",
		Help:      "Number of events held by a planner",
	}, []string{"planner"}))
	if err != nil {
		return nil, err
	}
	capacity, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "planner_capacity",
		Help:      "Storage capacity of a planner",
	}, []string{"planner"}))
	if err != nil {
		return nil, err
	}
	return &PromSink{operations: operations, resizes: resizes, events: events, capacity: capacity}, nil
}

// register returns the collector already registered under the same
// descriptor, if any, so several sinks can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordOperation increments the operation counter.
func (s *PromSink) RecordOperation(ev coremetrics.OperationEvent) error {
	s.operations.WithLabelValues(ev.Op, string(ev.Outcome)).Inc()
	return nil
}

// RecordResize increments the resize counter.
func (s *PromSink) RecordResize(ev coremetrics.ResizeEvent) error {
	s.resizes.WithLabelValues(ev.Direction()).Inc()
	return nil
}

// RecordSize sets the size and capacity gauges of a planner.
func (s *PromSink) RecordSize(plannerID string, events, capacity int) error {
	s.events.WithLabelValues(plannerID).Set(float64(events))
	s.capacity.WithLabelValues(plannerID).Set(float64(capacity))
	return nil
}
