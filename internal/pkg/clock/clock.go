package clock

import "time"

// Clock abstracts time so usecases stamp deterministic timestamps in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// NewRealClock returns the production clock backed by the system time.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable clock for tests.
type MockClock struct {
	current time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

func (m *MockClock) Set(t time.Time) {
	m.current = t
}

func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
