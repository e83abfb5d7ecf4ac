// Package channel implements the framework key-event delegate: it forwards
// each key event to the UI framework as a JSON message on a named channel
// and turns the framework's reply into a handled/unhandled verdict.
//
// The messenger is asynchronous; the verdict reaches the arbiter whenever
// the framework replies, possibly long after the hook returned and possibly
// on a different goroutine. A framework that never replies stalls the event,
// which the arbiter tolerates.
package channel
