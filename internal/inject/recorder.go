package inject

import "sync"

// Recorder is an Injector that captures every descriptor it receives.
// It accepts all inputs unless Refuse is set. Safe for concurrent use;
// delegate completions may inject from arbitrary goroutines.
type Recorder struct {
	mu     sync.Mutex
	inputs []Input

	// Refuse makes Inject report total injection failure while still
	// recording what was requested.
	Refuse bool
}

// Inject records the inputs and returns the accepted count.
func (r *Recorder) Inject(inputs []Input) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = append(r.inputs, inputs...)
	if r.Refuse {
		return 0
	}
	return len(inputs)
}

// Len returns the number of descriptors recorded.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inputs)
}

// Last returns the most recently recorded descriptor.
func (r *Recorder) Last() (Input, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.inputs) == 0 {
		return Input{}, false
	}
	return r.inputs[len(r.inputs)-1], true
}

// All returns a copy of every recorded descriptor in injection order.
func (r *Recorder) All() []Input {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Input, len(r.inputs))
	copy(out, r.inputs)
	return out
}

// Reset discards recorded descriptors.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = nil
}
