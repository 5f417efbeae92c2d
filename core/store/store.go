// Package store defines the record store the engine reads from and commits to.
// The engine holds no state of its own: every operation re-reads current
// records so it never acts on a stale assignment or status.
package store

import "github.com/aerialops/skyops/core/model"

// Store is the persistence collaborator for pilots, drones and missions.
// Lookups report presence with an ok bool; mutators report success the same
// way and are expected to persist before returning.
type Store interface {
	GetPilot(id string) (model.Pilot, bool)
	GetDrone(id string) (model.Drone, bool)
	GetMission(id string) (model.Mission, bool)

	ListPilots() []model.Pilot
	ListDrones() []model.Drone
	ListMissions() []model.Mission

	SetPilotAssignment(id, missionID string) bool
	SetDroneAssignment(id, missionID string) bool
	SetPilotStatus(id string, status model.PilotStatus) bool
	SetDroneStatus(id string, status model.DroneStatus) bool
}
