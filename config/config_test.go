package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `planner:
  initial_capacity: 4
  events:
    - start: "05:00"
      end: "06:00"
      label: jogging
    - start: "7"
      end: "7:30"
      label: breakfast
logging:
  level: debug
monitoring:
  environment: staging
metrics:
  prometheus_port: ":9200"
  sinks:
    - type: "nop"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"initial_capacity", cfg.Planner.InitialCapacity, 4},
		{"events", len(cfg.Planner.Events), 2},
		{"event label", cfg.Planner.Events[1].Label, "breakfast"},
		{"event start", cfg.Planner.Events[1].Start, "7"},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"prometheus_port", cfg.Metrics.PrometheusPort, ":9200"},
		{"monitoring.environment", cfg.Monitoring.Environment, "staging"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
	ev, err := cfg.Planner.Events[1].Interval()
	require.NoError(t, err)
	assert.Equal(t, "07:00-07:30/breakfast", ev.String())
}

func TestLoadJSONDefaults(t *testing.T) {
	path := writeConfig(t, "config.json", `{"planner":{"events":[{"start":"12:00","end":"13:00"}]}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Planner.InitialCapacity)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":9100", cfg.Metrics.PrometheusPort)
	assert.False(t, cfg.Metrics.PrometheusEnabled())
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", "planner:\n  initial_capacity: 4\n")
	t.Setenv("DP_PLANNER__INITIAL_CAPACITY", "16")
	t.Setenv("DP_LOGGING__LEVEL", "warn")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Planner.InitialCapacity)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"capacity":      "planner:\n  initial_capacity: 1\n",
		"reversed":      "planner:\n  events:\n    - {start: \"08:00\", end: \"07:00\"}\n",
		"bad time":      "planner:\n  events:\n    - {start: \"25:00\", end: \"26:00\"}\n",
		"level":         "logging:\n  level: loud\n",
		"sink missing":  "metrics:\n  sinks:\n    - conf: {}\n",
		"sample rate":   "monitoring:\n  traces_sample_rate: 2\n",
		"huge capacity": "planner:\n  initial_capacity: 4611686018427387904\n",
	}
	for name, data := range cases {
		path := writeConfig(t, "config.yaml", data)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Load(writeConfig(t, "config.toml", "")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEnvOverridesNestedKeys(t *testing.T) {
	path := writeConfig(t, "config.json", `{"metrics":{"prometheus_port":":9200"}}`)
	t.Setenv("DP_METRICS__PROMETHEUS_PORT", ":9300")
	t.Setenv("DP_MONITORING__ENVIRONMENT", "prod")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9300", cfg.Metrics.PrometheusPort)
	assert.Equal(t, "prod", cfg.Monitoring.Environment)
}

func TestPlannerCapacityBounds(t *testing.T) {
	c := PlannerConfig{InitialCapacity: MaxInitialCapacity}
	assert.NoError(t, c.Validate())
	c.InitialCapacity = MaxInitialCapacity + 1
	assert.Error(t, c.Validate())
	c.InitialCapacity = 1 << 62
	assert.Error(t, c.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Planner.Events)
	assert.Equal(t, 2, cfg.Planner.InitialCapacity)
}
