package model

// PilotStatus enumerates the roster states a pilot can be in.
type PilotStatus string

const (
	PilotAvailable   PilotStatus = "Available"
	PilotAssigned    PilotStatus = "Assigned"
	PilotOnLeave     PilotStatus = "On Leave"
	PilotUnavailable PilotStatus = "Unavailable"
)

// Pilot represents a roster entry for a licensed drone operator.
// Skills and Certifications are comma-delimited tag fields as stored in the
// roster; use ParseTags to compare them.
type Pilot struct {
	ID                string      `json:"pilot_id"`
	Name              string      `json:"name"`
	Skills            string      `json:"skills"`
	Certifications    string      `json:"certifications"`
	Location          string      `json:"location"`
	Status            PilotStatus `json:"status"`
	CurrentAssignment string      `json:"current_assignment"`
	AvailableFrom     string      `json:"available_from"`
}

// Assigned reports whether the pilot holds a real mission reference.
func (p Pilot) Assigned() bool { return HasAssignment(p.CurrentAssignment) }
