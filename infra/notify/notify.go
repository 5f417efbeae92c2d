// Package notify publishes committed assignment decisions to ground crews
// over MQTT.
package notify

import (
	"sync"

	"github.com/aerialops/skyops/core/events"
)

// Notifier delivers assignment decisions to the field.
type Notifier interface {
	AssignmentCommitted(ev events.AssignmentEvent) error
	Close() error
}

// MockNotifier records events for tests.
type MockNotifier struct {
	mu     sync.Mutex
	Events []events.AssignmentEvent
	Err    error
}

// NewMockNotifier creates a new MockNotifier.
func NewMockNotifier() *MockNotifier { return &MockNotifier{} }

func (m *MockNotifier) AssignmentCommitted(ev events.AssignmentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, ev)
	return nil
}

func (m *MockNotifier) Close() error { return nil }

// Count returns how many events were delivered.
func (m *MockNotifier) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Events)
}
