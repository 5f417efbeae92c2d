package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aerialops/skyops/core/events"
	"github.com/aerialops/skyops/core/metrics"
	"github.com/aerialops/skyops/core/model"
)

// ResourceKind names the kind of resource an assignment targets.
type ResourceKind string

const (
	KindPilot ResourceKind = "pilot"
	KindDrone ResourceKind = "drone"
)

// ParseResourceKind normalizes a textual resource kind.
func ParseResourceKind(s string) (ResourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pilot":
		return KindPilot, nil
	case "drone":
		return KindDrone, nil
	}
	return "", fmt.Errorf("unknown resource kind %q", s)
}

// Transaction outcomes as recorded in metrics.
const (
	outcomeCommitted    = "committed"
	outcomeBlocked      = "blocked"
	outcomeNeedsConfirm = "needs_confirmation"
	outcomeDryRun       = "dry_run"
	outcomeCommitFailed = "commit_failed"
)

// Outcome is the result of one assignment transaction.
type Outcome struct {
	Success              bool             `json:"success"`
	Message              string           `json:"message"`
	Conflicts            []model.Conflict `json:"conflicts"`
	RequiresConfirmation bool             `json:"requires_confirmation,omitempty"`
	DecisionID           string           `json:"decision_id"`
	MissionID            string           `json:"mission_id"`
	ResourceID           string           `json:"resource_id"`
	Kind                 ResourceKind     `json:"resource_kind"`
}

// Assign runs the staged assignment transaction: detect conflicts, block on
// HARD, require an override for SOFT, require an explicit confirm for the
// commit, then mutate and persist. Each call is stateless and re-derives
// everything from current store contents, so repeated dry runs are idempotent.
func (e *Engine) Assign(missionID, resourceID string, kind ResourceKind, confirm, overrideSoft bool) Outcome {
	e.assignMu.Lock()
	defer e.assignMu.Unlock()

	out := Outcome{
		DecisionID: uuid.NewString(),
		MissionID:  missionID,
		ResourceID: resourceID,
		Kind:       kind,
	}

	var conflicts []model.Conflict
	if kind == KindDrone {
		conflicts = e.DetectConflicts(missionID, "", resourceID)
	} else {
		conflicts = e.DetectConflicts(missionID, resourceID, "")
	}
	var hard, soft []model.Conflict
	for _, c := range conflicts {
		if c.Severity == model.SeverityHard {
			hard = append(hard, c)
		} else {
			soft = append(soft, c)
		}
	}

	// HARD always wins, regardless of confirm or overrideSoft.
	if len(hard) > 0 {
		out.Message = "Assignment blocked by HARD conflicts."
		out.Conflicts = hard
		e.log.Warnf("assignment of %s %s to %s blocked by %d hard conflicts", kind, resourceID, missionID, len(hard))
		return e.record(out, outcomeBlocked, len(hard), len(soft), overrideSoft)
	}

	if len(soft) > 0 && !overrideSoft {
		out.Message = "Soft conflicts detected. Confirmation required."
		out.Conflicts = soft
		out.RequiresConfirmation = true
		return e.record(out, outcomeNeedsConfirm, 0, len(soft), overrideSoft)
	}

	// Every real commit requires a second call with confirm set, even with
	// zero conflicts.
	if !confirm {
		out.Message = "Dry run successful. Set confirm to execute."
		out.Conflicts = soft
		return e.record(out, outcomeDryRun, 0, len(soft), overrideSoft)
	}

	var committed bool
	if kind == KindDrone {
		committed = e.store.SetDroneAssignment(resourceID, missionID)
	} else {
		committed = e.store.SetPilotAssignment(resourceID, missionID)
	}
	if !committed {
		out.Message = "Database update failed."
		return e.record(out, outcomeCommitFailed, 0, len(soft), overrideSoft)
	}

	out.Success = true
	out.Message = fmt.Sprintf("Assigned %s %s to %s", kind, resourceID, missionID)
	e.log.Infof("assigned %s %s to mission %s (decision %s)", kind, resourceID, missionID, out.DecisionID)
	if e.bus != nil {
		e.bus.Publish(events.AssignmentEvent{
			DecisionID: out.DecisionID,
			MissionID:  missionID,
			ResourceID: resourceID,
			Kind:       string(kind),
			Overridden: overrideSoft && len(soft) > 0,
			Time:       time.Now(),
		})
	}
	return e.record(out, outcomeCommitted, 0, len(soft), overrideSoft)
}

func (e *Engine) record(out Outcome, result string, hard, soft int, overridden bool) Outcome {
	if out.Conflicts == nil {
		out.Conflicts = []model.Conflict{}
	}
	assignmentsTotal.WithLabelValues(string(out.Kind), result).Inc()
	rec := metrics.AssignmentRecord{
		DecisionID:    out.DecisionID,
		MissionID:     out.MissionID,
		ResourceID:    out.ResourceID,
		Kind:          string(out.Kind),
		Outcome:       result,
		HardConflicts: hard,
		SoftConflicts: soft,
		Overridden:    overridden,
		Time:          time.Now(),
	}
	if err := e.sink.RecordAssignment(rec); err != nil {
		e.log.Errorf("record assignment: %v", err)
	}
	return out
}
