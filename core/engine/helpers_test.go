package engine

import (
	"testing"

	"github.com/aerialops/skyops/core/events"
	"github.com/aerialops/skyops/core/model"
	"github.com/aerialops/skyops/core/store"
	"github.com/aerialops/skyops/internal/eventbus"
)

// seedStore builds a roster that exercises every detector rule.
func seedStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.PutMission(model.Mission{
		ID: "PRJ001", Client: "AgriCo", Location: "Pune",
		RequiredSkills: "Mapping", RequiredCerts: "Thermal",
		StartDate: "2024-01-10", EndDate: "2024-01-15", Priority: model.PriorityStandard,
	})
	s.PutMission(model.Mission{
		ID: "PRJ002", Client: "RailCorp", Location: "Mumbai",
		RequiredSkills: "Inspection", RequiredCerts: "Thermal",
		StartDate: "2024-01-12", EndDate: "2024-01-20", Priority: model.PriorityLow,
	})
	s.PutMission(model.Mission{
		ID: "PRJ003", Client: "PortAuth", Location: "Pune",
		RequiredSkills: "Survey", RequiredCerts: "Thermal",
		StartDate: "2024-02-01", EndDate: "2024-02-05", Priority: model.PriorityUrgent,
	})
	s.PutPilot(model.Pilot{
		ID: "P001", Name: "Asha Rao", Skills: "Mapping, Survey",
		Certifications: "Thermal, DGCA", Location: "Pune",
		Status: model.PilotAvailable,
	})
	s.PutPilot(model.Pilot{
		ID: "P002", Name: "Vikram Shah", Skills: "Mapping",
		Certifications: "", Location: "Pune",
		Status: model.PilotAvailable,
	})
	s.PutPilot(model.Pilot{
		ID: "P003", Name: "Meera Iyer", Skills: "Mapping",
		Certifications: "Thermal", Location: "Mumbai",
		Status: model.PilotAvailable,
	})
	s.PutDrone(model.Drone{
		ID: "D001", Model: "AgEagle X2", Capabilities: "Thermal, RGB",
		Status: model.DroneAvailable, Location: "Pune", MaintenanceDue: "2024-06-01",
	})
	s.PutDrone(model.Drone{
		ID: "D002", Model: "SkyHawk", Capabilities: "RGB",
		Status: model.DroneMaintenance, Location: "Pune", MaintenanceDue: "2024-06-01",
	})
	return s
}

func newTestEngine(t *testing.T, s *store.MemoryStore) *Engine {
	t.Helper()
	e, err := New(s, nil, nil, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

func newTestEngineWithBus(t *testing.T, s *store.MemoryStore) (*Engine, *eventbus.Bus[events.AssignmentEvent]) {
	t.Helper()
	bus := eventbus.New[events.AssignmentEvent]()
	e, err := New(s, nil, nil, bus)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e, bus
}

func kinds(conflicts []model.Conflict) []model.ConflictKind {
	out := make([]model.ConflictKind, len(conflicts))
	for i, c := range conflicts {
		out[i] = c.Kind
	}
	return out
}
