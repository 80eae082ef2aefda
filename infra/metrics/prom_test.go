package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dayplanner/core/factory"
	coremetrics "github.com/kilianp07/dayplanner/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordOperation(coremetrics.OperationEvent{Op: "move", Outcome: coremetrics.OutcomeOK}))
	require.NoError(t, sink.RecordOperation(coremetrics.OperationEvent{Op: "move", Outcome: coremetrics.OutcomeRejected}))
	require.NoError(t, sink.RecordOperation(coremetrics.OperationEvent{Op: "move", Outcome: coremetrics.OutcomeRejected}))
	require.NoError(t, sink.RecordResize(coremetrics.ResizeEvent{From: 2, To: 4}))
	require.NoError(t, sink.RecordSize("p1", 3, 4))

	expected := `
# HELP planner_operations_total Planner operations by outcome
# TYPE planner_operations_total counter
planner_operations_total{op="move",outcome="ok"} 1
planner_operations_total{op="move",outcome="rejected"} 2
`
	if err := testutil.CollectAndCompare(sink.operations, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.resizes.WithLabelValues("grow")))
	assert.Equal(t, 3.0, testutil.ToFloat64(sink.events.WithLabelValues("p1")))
	assert.Equal(t, 4.0, testutil.ToFloat64(sink.capacity.WithLabelValues("p1")))
}

func TestPromSinkSharesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s1, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	s2, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, s1.RecordResize(coremetrics.ResizeEvent{From: 4, To: 2}))
	require.NoError(t, s2.RecordResize(coremetrics.ResizeEvent{From: 4, To: 2}))
	assert.Equal(t, 2.0, testutil.ToFloat64(s1.resizes.WithLabelValues("shrink")))
}

func TestPrometheusFactoryRegistered(t *testing.T) {
	s, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus"}})
	require.NoError(t, err)
	_, ok := s.(*PromSink)
	assert.True(t, ok, "got %T", s)
}

func TestPromSinkNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithConfig(reg, PromConfig{Namespace: "dayplanner"})
	require.NoError(t, err)
	require.NoError(t, sink.RecordSize("p", 2, 4))
	n, err := testutil.GatherAndCount(reg, "dayplanner_planner_events", "dayplanner_planner_capacity")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPrometheusFactoryDecodesConf(t *testing.T) {
	_, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus", Conf: map[string]any{"namespace": "factory_test"}}})
	require.NoError(t, err)
	_, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus", Conf: map[string]any{"namespace": 5}}})
	assert.Error(t, err)
}

func TestStartPromServerFor(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, sink.RecordSize("p", 1, 2))

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- StartPromServerFor(ctx, addr, reg) }()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, `planner_events{planner="p"} 1`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not stop")
	}
}
