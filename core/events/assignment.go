package events

import "time"

// AssignmentEvent is published after an assignment commits. Subscribers
// (field notifier, audit sinks) receive it asynchronously; the transaction
// does not wait for them.
type AssignmentEvent struct {
	DecisionID string
	MissionID  string
	ResourceID string
	Kind       string // "pilot" or "drone"
	Overridden bool   // soft conflicts were explicitly overridden
	Time       time.Time
}
