package arbiter

import "github.com/dshills/keyrelay/internal/key"

// pendingEvent aggregates delegate verdicts for one in-flight key event.
// It is created when KeyboardHook fans out and discarded when the last
// delegate has replied and the handler has acted on the aggregate verdict.
type pendingEvent struct {
	// id is the monotonically assigned sequence number of the dispatch.
	id uint64

	// event is a copy of the originating notification.
	event key.Event

	// unreplied counts delegates that have not yet invoked their sink.
	unreplied int

	// anyHandled is the running OR of delegate verdicts.
	anyHandled bool
}
