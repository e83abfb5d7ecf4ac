package arbiter

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/keyrelay/internal/inject"
	"github.com/dshills/keyrelay/internal/key"
)

// Sink reports a delegate's verdict for one key event. A delegate must
// invoke its sink exactly once per KeyboardHook call, either before
// returning or later from any goroutine. Repeat invocations are ignored.
type Sink func(handled bool)

// Delegate is a consumer of key events that eventually reports whether it
// handled each one. Delegates never observe redispatched events.
type Delegate interface {
	KeyboardHook(event key.Event, respond Sink)
}

// Handler arbitrates key events between the OS notification surface and the
// registered delegates. See the package documentation for the protocol.
type Handler struct {
	injector inject.Injector
	metrics  *Metrics

	delegates []Delegate

	mu      sync.Mutex
	seq     uint64
	pending map[uint64]*pendingEvent
	guard   redispatchGuard
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics attaches a metrics collector to the handler.
func WithMetrics(m *Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// New creates a handler that redispatches unhandled events through injector.
// The injector is retained for the handler's lifetime.
func New(injector inject.Injector, opts ...Option) *Handler {
	h := &Handler{
		injector: injector,
		pending:  make(map[uint64]*pendingEvent),
		guard:    make(redispatchGuard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddDelegate transfers a delegate into the registry. Delegates must be
// added before the first dispatch; registration during dispatch is not
// supported. Fan-out follows registration order.
func (h *Handler) AddDelegate(d Delegate) {
	h.delegates = append(h.delegates, d)
}

// KeyboardHook is the sole ingress for key notifications. It returns true
// when the handler consumes the event (the aggregate verdict is decided
// later, or was decided during the call) and false when the event should
// propagate normally: a redispatched event re-entering the hook, or any
// event when no delegates are registered.
func (h *Handler) KeyboardHook(event key.Event) bool {
	fp := event.Fingerprint()

	h.mu.Lock()
	if h.guard.remove(fp) {
		h.mu.Unlock()
		h.metrics.recordPassthrough()
		return false
	}
	if len(h.delegates) == 0 {
		h.mu.Unlock()
		return false
	}
	h.seq++
	p := &pendingEvent{id: h.seq, event: event, unreplied: len(h.delegates)}
	h.pending[p.id] = p
	id := p.id
	h.mu.Unlock()

	h.metrics.recordDispatch()
	for _, d := range h.delegates {
		d.KeyboardHook(event, h.newSink(id))
	}
	return true
}

// RedispatchedCount returns the number of injected events still awaiting
// re-entry.
func (h *Handler) RedispatchedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.guard.size()
}

// InFlight returns the number of events still awaiting delegate verdicts.
func (h *Handler) InFlight() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// newSink builds the single-shot completion sink for one delegate's share of
// the dispatch identified by id. The sink owns no pointer into the pending
// map; it carries only the sequence id, so it stays valid however late it
// fires.
func (h *Handler) newSink(id uint64) Sink {
	var done atomic.Bool
	return func(handled bool) {
		if !done.CompareAndSwap(false, true) {
			return
		}
		h.resolve(id, handled)
	}
}

// resolve records one delegate verdict and, when it is the last one,
// applies the aggregate: discard on any claim, otherwise guard the
// fingerprint and inject a synthesized copy.
func (h *Handler) resolve(id uint64, handled bool) {
	h.mu.Lock()
	p, ok := h.pending[id]
	if !ok {
		h.mu.Unlock()
		return
	}
	p.unreplied--
	if handled {
		p.anyHandled = true
	}
	if p.unreplied > 0 {
		h.mu.Unlock()
		return
	}
	delete(h.pending, id)
	if p.anyHandled {
		h.mu.Unlock()
		h.metrics.recordHandled()
		return
	}
	// Guard before injecting: the synthesized event may re-enter on this
	// goroutine before the injector call returns.
	h.guard.insert(p.event.Fingerprint())
	h.mu.Unlock()

	h.metrics.recordRedispatch()
	accepted := h.injector([]inject.Input{inject.FromEvent(p.event)})
	if accepted == 0 {
		// The OS refused the injection. The fingerprint stays guarded
		// regardless; the event is lost if it never re-enters.
		h.metrics.recordInjectFailure()
	}
}
