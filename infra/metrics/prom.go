package metrics

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/aerialops/skyops/core/metrics"
)

// PromSink records engine activity in Prometheus metrics.
type PromSink struct {
	assignments *prometheus.CounterVec
	checks      *prometheus.CounterVec
}

// NewPromSink registers sink metrics on the default Prometheus registerer.
// The metrics server is started separately via StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_outcomes_total",
		Help: "Assignment transaction outcomes",
	}, []string{"kind", "outcome", "overridden"})
	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "conflict_check_results_total",
		Help: "Conflict checks by whether hard or soft conflicts were found",
	}, []string{"hard", "soft"})

	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(checks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			checks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return &PromSink{assignments: assignments, checks: checks}, nil
}

// RecordAssignment increments the outcome counter.
func (s *PromSink) RecordAssignment(rec coremetrics.AssignmentRecord) error {
	s.assignments.WithLabelValues(rec.Kind, rec.Outcome, strconv.FormatBool(rec.Overridden)).Inc()
	return nil
}

// RecordCheck increments the check counter.
func (s *PromSink) RecordCheck(rec coremetrics.CheckRecord) error {
	s.checks.WithLabelValues(strconv.FormatBool(rec.Hard > 0), strconv.FormatBool(rec.Soft > 0)).Inc()
	return nil
}

// StartPromServer exposes /metrics on the given address until the context is
// canceled.
func StartPromServer(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("prom server shutdown: %v", err)
		}
		cancel()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
