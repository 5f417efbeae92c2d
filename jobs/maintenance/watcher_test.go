package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerialops/skyops/core/events"
	"github.com/aerialops/skyops/core/model"
	"github.com/aerialops/skyops/core/store"
	"github.com/aerialops/skyops/internal/eventbus"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
}

func seed() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.PutDrone(model.Drone{ID: "D001", Model: "SkyHawk", Status: model.DroneAvailable, MaintenanceDue: "2024-01-03"})
	s.PutDrone(model.Drone{ID: "D002", Model: "AgEagle", Status: model.DroneAvailable, MaintenanceDue: "2024-03-01"})
	s.PutDrone(model.Drone{ID: "D003", Model: "Falcon", Status: model.DroneMaintenance, MaintenanceDue: "2024-01-02"})
	s.PutDrone(model.Drone{ID: "D004", Model: "Heron", Status: model.DroneAvailable, MaintenanceDue: "tbd"})
	return s
}

func TestSweep(t *testing.T) {
	bus := eventbus.New[events.MaintenanceAlert]()
	sub := bus.Subscribe()
	w := NewWatcher(seed(), bus, nil, 7)
	w.now = fixedNow

	alerts := w.Sweep()
	require.Len(t, alerts, 1, "only the due, operational drone alerts")
	assert.Equal(t, "D001", alerts[0].DroneID)

	ev := <-sub
	assert.Equal(t, "D001", ev.DroneID)
	bus.Close()
}

func TestSweepWithoutBus(t *testing.T) {
	w := NewWatcher(seed(), nil, nil, 7)
	w.now = fixedNow
	assert.Len(t, w.Sweep(), 1)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	assert.Equal(t, 60, cfg.IntervalMinutes)
	assert.Equal(t, 7, cfg.WarnWindowDays)
}
