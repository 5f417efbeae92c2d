package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checksTotal       prometheus.Counter
	conflictsDetected *prometheus.CounterVec
	assignmentsTotal  *prometheus.CounterVec
)

// newCollectors creates new metric collectors.
func newCollectors() (prometheus.Counter, *prometheus.CounterVec, *prometheus.CounterVec) {
	checks := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "conflict_checks_total",
			Help: "Number of conflict detection passes",
		},
	)
	conflicts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conflicts_detected_total",
			Help: "Conflicts found by the detector",
		},
		[]string{"kind", "severity"},
	)
	assignments := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assignment_transactions_total",
			Help: "Assignment transactions by resource kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
	return checks, conflicts, assignments
}

func init() {
	checksTotal, conflictsDetected, assignmentsTotal = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers engine metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(checksTotal, conflictsDetected, assignmentsTotal)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	checksTotal, conflictsDetected, assignmentsTotal = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
