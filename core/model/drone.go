package model

// DroneStatus enumerates the fleet states a drone can be in.
type DroneStatus string

const (
	DroneAvailable   DroneStatus = "Available"
	DroneAssigned    DroneStatus = "Assigned"
	DroneMaintenance DroneStatus = "Maintenance"
)

// Drone represents a fleet entry for an airframe.
type Drone struct {
	ID                string      `json:"drone_id"`
	Model             string      `json:"model"`
	Capabilities      string      `json:"capabilities"`
	Status            DroneStatus `json:"status"`
	Location          string      `json:"location"`
	CurrentAssignment string      `json:"current_assignment"`
	MaintenanceDue    string      `json:"maintenance_due"`
}

// Assigned reports whether the drone holds a real mission reference.
func (d Drone) Assigned() bool { return HasAssignment(d.CurrentAssignment) }
