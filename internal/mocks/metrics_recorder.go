package mocks

import (
	"sync"
	"time"

	"github.com/phrazzld/booking-api/internal/platform/metrics"
)

// AuthEvent is one call to RecordAuthEvent.
type AuthEvent struct {
	Action  string
	Outcome string
}

// HTTPObservation is one call to ObserveHTTPRequest.
type HTTPObservation struct {
	Method string
	Route  string
	Status int
}

// MockMetricsRecorder records calls made to a metrics.Recorder.
type MockMetricsRecorder struct {
	mu           sync.Mutex
	AuthEvents   []AuthEvent
	Observations []HTTPObservation
}

var _ metrics.Recorder = (*MockMetricsRecorder)(nil)

// ObserveHTTPRequest implements metrics.Recorder.
func (m *MockMetricsRecorder) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Observations = append(m.Observations, HTTPObservation{Method: method, Route: route, Status: status})
}

// RecordAuthEvent implements metrics.Recorder.
func (m *MockMetricsRecorder) RecordAuthEvent(action, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AuthEvents = append(m.AuthEvents, AuthEvent{Action: action, Outcome: outcome})
}

// Events returns a copy of the recorded auth events.
func (m *MockMetricsRecorder) Events() []AuthEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AuthEvent(nil), m.AuthEvents...)
}

// HTTPObservations returns a copy of the recorded requests.
func (m *MockMetricsRecorder) HTTPObservations() []HTTPObservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]HTTPObservation(nil), m.Observations...)
}
