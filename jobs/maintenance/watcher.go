// Package maintenance watches the drone fleet for upcoming service dates and
// raises alerts before a drone silently becomes unassignable.
package maintenance

import (
	"context"
	"time"

	"github.com/aerialops/skyops/core/events"
	"github.com/aerialops/skyops/core/logger"
	"github.com/aerialops/skyops/core/model"
	"github.com/aerialops/skyops/core/store"
	infralogger "github.com/aerialops/skyops/infra/logger"
	"github.com/aerialops/skyops/internal/eventbus"
)

// Config defines the watcher schedule.
type Config struct {
	Enabled         bool `json:"enabled"`
	IntervalMinutes int  `json:"interval_minutes"`
	WarnWindowDays  int  `json:"warn_window_days"`
}

// SetDefaults fills unset fields with sensible values.
func (c *Config) SetDefaults() {
	if c.IntervalMinutes <= 0 {
		c.IntervalMinutes = 60
	}
	if c.WarnWindowDays <= 0 {
		c.WarnWindowDays = 7
	}
}

// Watcher periodically scans the fleet for drones whose maintenance_due date
// falls inside the warning window.
type Watcher struct {
	store  store.Store
	bus    *eventbus.Bus[events.MaintenanceAlert]
	log    logger.Logger
	window time.Duration
	now    func() time.Time
}

// NewWatcher creates a Watcher. The bus is optional.
func NewWatcher(st store.Store, bus *eventbus.Bus[events.MaintenanceAlert], log logger.Logger, warnWindowDays int) *Watcher {
	if log == nil {
		log = infralogger.NopLogger{}
	}
	return &Watcher{
		store:  st,
		bus:    bus,
		log:    log,
		window: time.Duration(warnWindowDays) * 24 * time.Hour,
		now:    time.Now,
	}
}

// Sweep scans the fleet once and returns the alerts raised. Drones already
// in maintenance and drones with unparseable due dates are skipped.
func (w *Watcher) Sweep() []events.MaintenanceAlert {
	now := w.now()
	horizon := now.Add(w.window)
	var alerts []events.MaintenanceAlert
	for _, d := range w.store.ListDrones() {
		if d.Status == model.DroneMaintenance {
			continue
		}
		due, err := model.ParseDate(d.MaintenanceDue)
		if err != nil {
			continue
		}
		if due.Before(horizon) {
			alert := events.MaintenanceAlert{DroneID: d.ID, Model: d.Model, DueDate: due, Time: now}
			alerts = append(alerts, alert)
			w.log.Warnf("drone %s (%s) due for maintenance on %s", d.ID, d.Model, due.Format("2006-01-02"))
			if w.bus != nil {
				w.bus.Publish(alert)
			}
		}
	}
	return alerts
}

// Run sweeps immediately and then on every interval tick until the context
// is canceled.
func (w *Watcher) Run(ctx context.Context, interval time.Duration) {
	w.Sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.Sweep()
		case <-ctx.Done():
			return
		}
	}
}
