package store

import (
	"sync"

	"github.com/aerialops/skyops/core/model"
)

// MemoryStore keeps all records in memory. List order is insertion order so
// score ties in the matcher break deterministically.
type MemoryStore struct {
	mu       sync.RWMutex
	pilots   []model.Pilot
	drones   []model.Drone
	missions []model.Mission
	pilotIdx map[string]int
	droneIdx map[string]int
	missIdx  map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pilotIdx: map[string]int{},
		droneIdx: map[string]int{},
		missIdx:  map[string]int{},
	}
}

// PutPilot inserts or replaces a pilot record.
func (s *MemoryStore) PutPilot(p model.Pilot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.pilotIdx[p.ID]; ok {
		s.pilots[i] = p
		return
	}
	s.pilotIdx[p.ID] = len(s.pilots)
	s.pilots = append(s.pilots, p)
}

// PutDrone inserts or replaces a drone record.
func (s *MemoryStore) PutDrone(d model.Drone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.droneIdx[d.ID]; ok {
		s.drones[i] = d
		return
	}
	s.droneIdx[d.ID] = len(s.drones)
	s.drones = append(s.drones, d)
}

// PutMission inserts or replaces a mission record.
func (s *MemoryStore) PutMission(m model.Mission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.missIdx[m.ID]; ok {
		s.missions[i] = m
		return
	}
	s.missIdx[m.ID] = len(s.missions)
	s.missions = append(s.missions, m)
}

func (s *MemoryStore) GetPilot(id string) (model.Pilot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.pilotIdx[id]; ok {
		return s.pilots[i], true
	}
	return model.Pilot{}, false
}

func (s *MemoryStore) GetDrone(id string) (model.Drone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.droneIdx[id]; ok {
		return s.drones[i], true
	}
	return model.Drone{}, false
}

func (s *MemoryStore) GetMission(id string) (model.Mission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.missIdx[id]; ok {
		return s.missions[i], true
	}
	return model.Mission{}, false
}

func (s *MemoryStore) ListPilots() []model.Pilot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Pilot, len(s.pilots))
	copy(out, s.pilots)
	return out
}

func (s *MemoryStore) ListDrones() []model.Drone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Drone, len(s.drones))
	copy(out, s.drones)
	return out
}

func (s *MemoryStore) ListMissions() []model.Mission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Mission, len(s.missions))
	copy(out, s.missions)
	return out
}

// SetPilotAssignment points the pilot at the mission and flips status to
// Assigned. Passing the unassigned sentinel clears the reference and restores
// Available, keeping status and assignment consistent.
func (s *MemoryStore) SetPilotAssignment(id, missionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.pilotIdx[id]
	if !ok {
		return false
	}
	if model.HasAssignment(missionID) {
		s.pilots[i].CurrentAssignment = missionID
		s.pilots[i].Status = model.PilotAssigned
	} else {
		s.pilots[i].CurrentAssignment = model.NoAssignment
		s.pilots[i].Status = model.PilotAvailable
	}
	return true
}

// SetDroneAssignment mirrors SetPilotAssignment for drones.
func (s *MemoryStore) SetDroneAssignment(id, missionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.droneIdx[id]
	if !ok {
		return false
	}
	if model.HasAssignment(missionID) {
		s.drones[i].CurrentAssignment = missionID
		s.drones[i].Status = model.DroneAssigned
	} else {
		s.drones[i].CurrentAssignment = model.NoAssignment
		s.drones[i].Status = model.DroneAvailable
	}
	return true
}

func (s *MemoryStore) SetPilotStatus(id string, status model.PilotStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.pilotIdx[id]
	if !ok {
		return false
	}
	s.pilots[i].Status = status
	return true
}

func (s *MemoryStore) SetDroneStatus(id string, status model.DroneStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.droneIdx[id]
	if !ok {
		return false
	}
	s.drones[i].Status = status
	return true
}
