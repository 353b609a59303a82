package dispatch

import (
	"sync"
	"time"
)

// TypeMetrics holds dispatch statistics for a single event type.
type TypeMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
}

// Metrics collects dispatch statistics across all event types.
type Metrics struct {
	mu sync.RWMutex

	byType map[string]*TypeMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
}

// NewMetrics creates an empty Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{byType: make(map[string]*TypeMetrics)}
}

// Record logs one dispatch outcome for typeName.
func (m *Metrics) Record(typeName string, d time.Duration, status Status, panicked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	if status == StatusError {
		m.totalErrors++
	}
	if panicked {
		m.totalPanics++
	}

	tm := m.byType[typeName]
	if tm == nil {
		tm = &TypeMetrics{Name: typeName, MinDuration: d, MaxDuration: d}
		m.byType[typeName] = tm
	}
	tm.DispatchCount++
	tm.TotalDuration += d
	if status == StatusError {
		tm.ErrorCount++
	}
	if d < tm.MinDuration {
		tm.MinDuration = d
	}
	if d > tm.MaxDuration {
		tm.MaxDuration = d
	}
}

// Snapshot returns a copy of the metrics recorded for typeName.
func (m *Metrics) Snapshot(typeName string) (TypeMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tm, ok := m.byType[typeName]
	if !ok {
		return TypeMetrics{}, false
	}
	return *tm, true
}

// TotalDispatches returns the number of dispatches recorded across all
// event types.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the number of StatusError outcomes recorded.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the number of executor panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}
