package events

import "time"

// MaintenanceAlert is emitted by the maintenance watcher when a drone's due
// date falls inside the warning window.
type MaintenanceAlert struct {
	DroneID string
	Model   string
	DueDate time.Time
	Time    time.Time
}
