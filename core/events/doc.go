// Package events defines the engine events emitted on the event bus.
//
// Available event types:
//   - AssignmentEvent: a committed assignment transaction
//   - MaintenanceAlert: a drone approaching its maintenance due date
package events
