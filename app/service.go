// Package app assembles the record store, engine, sinks, notifier, HTTP API
// and background jobs from a loaded configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aerialops/skyops/api/ops"
	"github.com/aerialops/skyops/api/roster"
	"github.com/aerialops/skyops/config"
	"github.com/aerialops/skyops/core/engine"
	"github.com/aerialops/skyops/core/events"
	corestore "github.com/aerialops/skyops/core/store"
	"github.com/aerialops/skyops/infra/logger"
	"github.com/aerialops/skyops/infra/metrics"
	"github.com/aerialops/skyops/infra/notify"
	infrastore "github.com/aerialops/skyops/infra/store"
	"github.com/aerialops/skyops/internal/eventbus"
	"github.com/aerialops/skyops/jobs/maintenance"
)

// Service owns the wired components and their lifecycles.
type Service struct {
	Engine *engine.Engine
	Store  corestore.Store

	cfg      *config.Config
	log      logger.Logger
	bus      *eventbus.Bus[events.AssignmentEvent]
	alerts   *eventbus.Bus[events.MaintenanceAlert]
	notifier notify.Notifier
	watcher  *maintenance.Watcher
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	st, err := openStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	sink, err := metrics.NewSink(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	bus := eventbus.New[events.AssignmentEvent]()
	eng, err := engine.New(st, logger.New("engine"), sink, bus)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	svc := &Service{Engine: eng, Store: st, cfg: cfg, log: logg, bus: bus}

	if cfg.Notify.Enabled {
		notifier, err := notify.NewPahoNotifier(cfg.Notify)
		if err != nil {
			return nil, fmt.Errorf("notifier: %w", err)
		}
		svc.notifier = notifier
	}

	if cfg.Maintenance.Enabled {
		svc.alerts = eventbus.New[events.MaintenanceAlert]()
		svc.watcher = maintenance.NewWatcher(st, svc.alerts, logger.New("maintenance"), cfg.Maintenance.WarnWindowDays)
	}

	return svc, nil
}

func openStore(cfg config.StoreConfig) (corestore.Store, error) {
	switch cfg.Backend {
	case "memory":
		return corestore.NewMemoryStore(), nil
	case "csv":
		return infrastore.Open(cfg.PilotsPath, cfg.DronesPath, cfg.MissionsPath)
	default:
		return nil, fmt.Errorf("unknown store backend %s", cfg.Backend)
	}
}

// Handler builds the HTTP mux for the API endpoints.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/conflicts/check", ops.NewCheckHandler(s.Engine))
	mux.Handle("/api/assign", ops.NewAssignHandler(s.Engine))
	mux.Handle("/api/reassign/suggest", ops.NewReassignHandler(s.Engine))
	mux.Handle("/api/missions", roster.NewMissionsHandler(s.Store))
	mux.Handle("/api/missions/", missionRouter(s.Engine))
	mux.Handle("/api/pilots", roster.NewPilotsHandler(s.Store))
	mux.Handle("/api/pilots/", roster.NewPilotStatusHandler(s.Store))
	mux.Handle("/api/drones", roster.NewDronesHandler(s.Store))
	mux.Handle("/api/drones/", roster.NewDroneStatusHandler(s.Store))
	return ops.RequireToken(s.cfg.HTTP.Token, mux)
}

// missionRouter dispatches /api/missions/{id}/candidates and
// /api/missions/{id}/report to their handlers.
func missionRouter(eng *engine.Engine) http.Handler {
	candidates := ops.NewCandidatesHandler(eng)
	report := ops.NewReportHandler(eng)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/candidates"):
			candidates.ServeHTTP(w, r)
		case strings.HasSuffix(r.URL.Path, "/report"):
			report.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// Run starts the HTTP server and background jobs and blocks until the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.notifier != nil {
		go s.forwardAssignments(ctx)
	}
	if s.watcher != nil {
		go s.watcher.Run(ctx, time.Duration(s.cfg.Maintenance.IntervalMinutes)*time.Minute)
	}
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, ":"+s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	if !s.cfg.HTTP.Enabled {
		<-ctx.Done()
		return nil
	}

	srv := &http.Server{
		Addr:              s.cfg.HTTP.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("api listening on %s", s.cfg.HTTP.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Service) forwardAssignments(ctx context.Context) {
	sub := s.bus.Subscribe()
	defer s.bus.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			if err := s.notifier.AssignmentCommitted(ev); err != nil {
				s.log.Warnf("notify: %v", err)
			}
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.alerts != nil {
		s.alerts.Close()
	}
	if s.notifier != nil {
		return s.notifier.Close()
	}
	return nil
}
