// Package engine implements the assignment rules for drone operations:
// conflict detection, candidate ranking, reassignment advice and the staged
// assignment transaction. The engine is stateless between calls; every
// operation re-reads the record store so it never acts on stale data.
package engine

import (
	"fmt"
	"sync"

	"github.com/aerialops/skyops/core/events"
	"github.com/aerialops/skyops/core/logger"
	"github.com/aerialops/skyops/core/metrics"
	"github.com/aerialops/skyops/core/store"
	"github.com/aerialops/skyops/internal/eventbus"
)

// Engine evaluates assignment rules against the record store.
type Engine struct {
	store store.Store
	log   logger.Logger
	sink  metrics.Sink
	bus   *eventbus.Bus[events.AssignmentEvent]

	// assignMu serializes the check-then-commit sequence in Assign so
	// in-process callers keep the single-writer assumption.
	assignMu sync.Mutex
}

// New creates an Engine. The sink and bus are optional; the logger defaults
// to a no-op when nil.
func New(st store.Store, log logger.Logger, sink metrics.Sink, bus *eventbus.Bus[events.AssignmentEvent]) (*Engine, error) {
	if st == nil {
		return nil, fmt.Errorf("engine: nil store")
	}
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{store: st, log: log, sink: sink, bus: bus}, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
