package arbiter

import "sync"

// Metrics collects dispatch statistics. A nil *Metrics is valid and records
// nothing, so the handler never branches on whether metrics are attached.
type Metrics struct {
	mu sync.Mutex

	dispatched     uint64
	handled        uint64
	redispatched   uint64
	passthroughs   uint64
	injectFailures uint64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	// Dispatched counts events fanned out to delegates.
	Dispatched uint64
	// Handled counts events claimed by at least one delegate.
	Handled uint64
	// Redispatched counts events handed to the injector.
	Redispatched uint64
	// Passthroughs counts re-entered events recognized by the guard.
	Passthroughs uint64
	// InjectFailures counts injector calls that accepted zero events.
	InjectFailures uint64
}

// NewMetrics creates a metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		Dispatched:     m.dispatched,
		Handled:        m.handled,
		Redispatched:   m.redispatched,
		Passthroughs:   m.passthroughs,
		InjectFailures: m.injectFailures,
	}
}

func (m *Metrics) recordDispatch() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.dispatched++
	m.mu.Unlock()
}

func (m *Metrics) recordHandled() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.handled++
	m.mu.Unlock()
}

func (m *Metrics) recordRedispatch() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.redispatched++
	m.mu.Unlock()
}

func (m *Metrics) recordPassthrough() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.passthroughs++
	m.mu.Unlock()
}

func (m *Metrics) recordInjectFailure() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.injectFailures++
	m.mu.Unlock()
}
