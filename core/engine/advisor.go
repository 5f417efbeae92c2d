package engine

import (
	"fmt"

	"github.com/aerialops/skyops/core/model"
)

// Reassignment proposes pulling a busy pilot onto a higher-priority mission.
// It is advice only: a later Assign call re-validates everything.
type Reassignment struct {
	PilotID           string         `json:"pilot_id"`
	Name              string         `json:"name"`
	CurrentAssignment string         `json:"current_assignment"`
	CurrentPriority   model.Priority `json:"current_priority"`
	LocationMatch     bool           `json:"location_match"`
}

func (r Reassignment) String() string {
	return fmt.Sprintf("Pilot %s (%s) can be pulled from %s (%s priority)",
		r.Name, r.PilotID, r.CurrentAssignment, r.CurrentPriority)
}

// SuggestReassignments scans assigned pilots who hold the mission's required
// certifications and whose current mission ranks strictly lower in priority.
// It only activates for Urgent missions unless urgentOverride is set.
func (e *Engine) SuggestReassignments(missionID string, urgentOverride bool) []Reassignment {
	mission, ok := e.store.GetMission(missionID)
	if !ok {
		return nil
	}
	if mission.Priority != model.PriorityUrgent && !urgentOverride {
		return nil
	}

	reqCerts := model.ParseTags(mission.RequiredCerts)
	var out []Reassignment
	for _, p := range e.store.ListPilots() {
		if !p.Assigned() {
			continue
		}
		if len(model.MissingTags(reqCerts, model.ParseTags(p.Certifications))) > 0 {
			continue
		}
		curr, ok := e.store.GetMission(p.CurrentAssignment)
		if !ok {
			// dangling reference, same permissiveness as the detector
			continue
		}
		if mission.Priority.Rank() > curr.Priority.Rank() {
			out = append(out, Reassignment{
				PilotID:           p.ID,
				Name:              p.Name,
				CurrentAssignment: p.CurrentAssignment,
				CurrentPriority:   curr.Priority,
				LocationMatch:     p.Location == mission.Location,
			})
		}
	}
	return out
}
