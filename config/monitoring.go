package config

import "fmt"

// MonitoringConfig holds the Sentry settings. An empty DSN disables
// reporting.
type MonitoringConfig struct {
	SentryDSN        string  `json:"sentry_dsn"`
	Environment      string  `json:"environment"`
	Release          string  `json:"release"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
}

// Validate checks the sample rate.
func (c MonitoringConfig) Validate() error {
	if c.TracesSampleRate < 0 || c.TracesSampleRate > 1 {
		return fmt.Errorf("traces_sample_rate %v not in [0, 1]", c.TracesSampleRate)
	}
	return nil
}
