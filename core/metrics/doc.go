// Package metrics defines the observability sinks the engine reports to.
// Implementations live in infra/metrics.
package metrics
