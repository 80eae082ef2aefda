package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/dayplanner/core/factory"
	coremetrics "github.com/kilianp07/dayplanner/core/metrics"
)

// init registers the prometheus sink type. Its conf accepts a namespace.
func init() {
	_ = coremetrics.RegisterMetricsSink("prometheus", func(conf map[string]any) (coremetrics.MetricsSink, error) {
		var c PromConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		s, err := NewPromSinkWithConfig(prometheus.DefaultRegisterer, c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
