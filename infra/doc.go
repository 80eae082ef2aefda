// Package infra contains technical adapters: the zerolog logger, the
// Prometheus metrics sink and the Sentry monitor. These packages depend only
// on the interfaces defined in the core packages.
package infra
