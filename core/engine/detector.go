package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/aerialops/skyops/core/metrics"
	"github.com/aerialops/skyops/core/model"
)

// DetectConflicts runs all applicable rules for assigning the given pilot
// and/or drone to the mission. Pilot checks precede drone checks and within
// each resource the rule order is fixed. A missing or unparseable mission is
// terminal: a single DATA_ERROR conflict is returned and nothing else runs.
func (e *Engine) DetectConflicts(missionID, pilotID, droneID string) []model.Conflict {
	checksTotal.Inc()
	conflicts := e.runChecks(missionID, pilotID, droneID)

	rec := metrics.CheckRecord{MissionID: missionID, PilotID: pilotID, DroneID: droneID, Time: time.Now()}
	for _, c := range conflicts {
		conflictsDetected.WithLabelValues(string(c.Kind), string(c.Severity)).Inc()
		rec.Kinds = append(rec.Kinds, string(c.Kind))
		if c.Severity == model.SeverityHard {
			rec.Hard++
		} else {
			rec.Soft++
		}
	}
	if err := e.sink.RecordCheck(rec); err != nil {
		e.log.Errorf("record check: %v", err)
	}
	e.log.Debugw("conflict check", map[string]any{
		"mission": missionID, "pilot": pilotID, "drone": droneID,
		"hard": rec.Hard, "soft": rec.Soft,
	})
	return conflicts
}

func (e *Engine) runChecks(missionID, pilotID, droneID string) []model.Conflict {
	mission, ok := e.store.GetMission(missionID)
	if !ok {
		return []model.Conflict{model.HardConflict(model.ConflictDataError,
			fmt.Sprintf("Mission %s not found", missionID))}
	}
	mStart, mEnd, err := mission.Window()
	if err != nil {
		return []model.Conflict{model.HardConflict(model.ConflictDataError,
			fmt.Sprintf("Invalid dates for mission %s", missionID))}
	}

	var conflicts []model.Conflict
	if pilotID != "" {
		conflicts = append(conflicts, e.pilotChecks(mission, mStart, mEnd, pilotID)...)
	}
	if droneID != "" {
		conflicts = append(conflicts, e.droneChecks(mission, mStart, mEnd, pilotID, droneID)...)
	}
	return conflicts
}

func (e *Engine) pilotChecks(m model.Mission, mStart, mEnd time.Time, pilotID string) []model.Conflict {
	pilot, ok := e.store.GetPilot(pilotID)
	if !ok {
		return []model.Conflict{model.HardConflict(model.ConflictDataError,
			fmt.Sprintf("Pilot %s not found", pilotID))}
	}
	var out []model.Conflict

	switch pilot.Status {
	case model.PilotOnLeave:
		out = append(out, model.HardConflict(model.ConflictUnavailable,
			fmt.Sprintf("Pilot %s is On Leave.", pilot.Name)))
	case model.PilotUnavailable:
		out = append(out, model.HardConflict(model.ConflictUnavailable,
			fmt.Sprintf("Pilot %s is Unavailable.", pilot.Name)))
	}

	if c, found := e.doubleBooking(m, mStart, mEnd, pilot.CurrentAssignment, "Pilot "+pilot.Name); found {
		out = append(out, c)
	}

	reqCerts := model.ParseTags(m.RequiredCerts)
	if missing := model.MissingTags(reqCerts, model.ParseTags(pilot.Certifications)); len(missing) > 0 {
		out = append(out, model.HardConflict(model.ConflictCertificationMissing,
			fmt.Sprintf("Pilot %s missing required certs: %s", pilot.Name, strings.Join(missing, ", "))))
	}

	reqSkills := model.ParseTags(m.RequiredSkills)
	if missing := model.MissingTags(reqSkills, model.ParseTags(pilot.Skills)); len(missing) > 0 {
		out = append(out, model.SoftConflict(model.ConflictSkillMismatch,
			fmt.Sprintf("Pilot %s missing preferred skills: %s", pilot.Name, strings.Join(missing, ", "))))
	}

	if pilot.Location != m.Location {
		out = append(out, model.SoftConflict(model.ConflictLocationMismatch,
			fmt.Sprintf("Pilot %s is in %s, mission is in %s.", pilot.Name, pilot.Location, m.Location)))
	}
	return out
}

func (e *Engine) droneChecks(m model.Mission, mStart, mEnd time.Time, pilotID, droneID string) []model.Conflict {
	drone, ok := e.store.GetDrone(droneID)
	if !ok {
		return []model.Conflict{model.HardConflict(model.ConflictDataError,
			fmt.Sprintf("Drone %s not found", droneID))}
	}
	var out []model.Conflict

	if drone.Status == model.DroneMaintenance {
		out = append(out, model.HardConflict(model.ConflictMaintenance,
			fmt.Sprintf("Drone %s is in Maintenance.", drone.Model)))
	}

	// A drone due for service before the mission ends cannot be trusted for
	// the full duration. Unparseable due dates are skipped.
	if due, err := model.ParseDate(drone.MaintenanceDue); err == nil && due.Before(mEnd) {
		out = append(out, model.HardConflict(model.ConflictMaintenanceDue,
			fmt.Sprintf("Drone %s maintenance due (%s) before mission ends.", drone.Model, drone.MaintenanceDue)))
	}

	if c, found := e.doubleBooking(m, mStart, mEnd, drone.CurrentAssignment, "Drone "+drone.Model); found {
		out = append(out, c)
	}

	if drone.Location != m.Location {
		out = append(out, model.SoftConflict(model.ConflictLocationMismatch,
			fmt.Sprintf("Drone %s is in %s, mission is in %s.", drone.Model, drone.Location, m.Location)))
	}

	// Pilot and equipment must co-locate. This is stricter than the
	// per-resource location rule: a split pair cannot execute at all, so it
	// is HARD even though each side alone is only SOFT.
	if pilotID != "" {
		if pilot, ok := e.store.GetPilot(pilotID); ok && pilot.Location != drone.Location {
			out = append(out, model.HardConflict(model.ConflictLocationMismatch,
				fmt.Sprintf("Pilot (%s) and Drone (%s) are in different locations.", pilot.Location, drone.Location)))
		}
	}
	return out
}

// doubleBooking checks an existing assignment reference against the mission
// window. A dangling reference is ignored: blocking on a mission that no
// longer exists would strand the resource.
func (e *Engine) doubleBooking(m model.Mission, mStart, mEnd time.Time, ref, who string) (model.Conflict, bool) {
	if !model.HasAssignment(ref) || ref == m.ID {
		return model.Conflict{}, false
	}
	other, ok := e.store.GetMission(ref)
	if !ok {
		return model.Conflict{}, false
	}
	oStart, oEnd, err := other.Window()
	if err != nil {
		return model.Conflict{}, false
	}
	if model.Overlaps(mStart, mEnd, oStart, oEnd) {
		return model.HardConflict(model.ConflictDoubleBooking,
			fmt.Sprintf("%s is assigned to %s during these dates.", who, ref)), true
	}
	return model.Conflict{}, false
}
