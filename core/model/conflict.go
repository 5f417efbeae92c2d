package model

// Severity grades a conflict. HARD blocks a commit unconditionally, SOFT
// blocks unless the caller overrides it.
type Severity string

const (
	SeverityHard Severity = "HARD"
	SeveritySoft Severity = "SOFT"
)

// ConflictKind enumerates the typed conflicts the detector can emit.
type ConflictKind string

const (
	ConflictDataError            ConflictKind = "DATA_ERROR"
	ConflictUnavailable          ConflictKind = "UNAVAILABLE"
	ConflictDoubleBooking        ConflictKind = "DOUBLE_BOOKING"
	ConflictCertificationMissing ConflictKind = "CERTIFICATION_MISSING"
	ConflictSkillMismatch        ConflictKind = "SKILL_MISMATCH"
	ConflictLocationMismatch     ConflictKind = "LOCATION_MISMATCH"
	ConflictMaintenance          ConflictKind = "MAINTENANCE"
	ConflictMaintenanceDue       ConflictKind = "MAINTENANCE_DUE"
)

// Conflict is the transient result of one detector rule. It is returned as
// data, never persisted and never raised as an error.
type Conflict struct {
	Kind        ConflictKind `json:"type"`
	Severity    Severity     `json:"severity"`
	Message     string       `json:"message"`
	CanOverride bool         `json:"can_override"`
}

// HardConflict builds a non-overridable conflict.
func HardConflict(kind ConflictKind, msg string) Conflict {
	return Conflict{Kind: kind, Severity: SeverityHard, Message: msg}
}

// SoftConflict builds an overridable conflict.
func SoftConflict(kind ConflictKind, msg string) Conflict {
	return Conflict{Kind: kind, Severity: SeveritySoft, Message: msg, CanOverride: true}
}
