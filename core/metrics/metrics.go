package metrics

import "time"

// AssignmentRecord captures the outcome of one assignment transaction.
type AssignmentRecord struct {
	DecisionID    string
	MissionID     string
	ResourceID    string
	Kind          string
	Outcome       string // committed, blocked, needs_confirmation, dry_run, commit_failed
	HardConflicts int
	SoftConflicts int
	Overridden    bool
	Time          time.Time
}

// CheckRecord captures one conflict-detection pass.
type CheckRecord struct {
	MissionID string
	PilotID   string
	DroneID   string
	Kinds     []string // conflict kinds found, in detector order
	Hard      int
	Soft      int
	Time      time.Time
}

// Sink records engine activity for observability purposes.
type Sink interface {
	RecordAssignment(rec AssignmentRecord) error
	RecordCheck(rec CheckRecord) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordAssignment(AssignmentRecord) error { return nil }
func (NopSink) RecordCheck(CheckRecord) error           { return nil }
