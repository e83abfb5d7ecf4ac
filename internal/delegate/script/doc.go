// Package script implements a user-scriptable key filter delegate backed by
// a Lua interpreter.
//
// A script declares a global on_key function receiving a table with the
// event fields and returning a boolean verdict:
//
//	function on_key(event)
//	  return event.char == string.byte("q") and event.action == "keydown"
//	end
//
// gopher-lua's LState is not goroutine-safe, so the delegate owns a single
// executor goroutine and feeds it calls over a channel; verdicts therefore
// always reach the arbiter asynchronously. A full call queue declines the
// event immediately rather than blocking the windowing thread.
package script
