// Package arbiter implements the keyboard event dispatch and redispatch
// arbiter that sits between the OS key notification surface and the
// embedder's handler delegates.
//
// Every key notification enters through Handler.KeyboardHook, which fans the
// event out to all registered delegates and collects their verdicts through
// single-shot completion sinks. Delegates may reply before the hook returns
// or later from any goroutine. When every delegate has declined an event, the
// handler records the event's fingerprint in a redispatch guard and injects
// an identical synthesized event back into the OS input stream so that
// non-framework consumers still observe it. When that synthesized event
// re-enters the hook, the guard recognizes it, removes one matching
// fingerprint, and declines it without consulting any delegate, which breaks
// the dispatch cycle.
//
// The guard is a multiset: the same fingerprint can legally be in flight more
// than once (key repeat), and each re-entry consumes exactly one occurrence.
//
// The handler performs no logging and spawns no goroutines of its own. A
// single mutex serializes the in-flight set and the guard against completion
// sinks firing on foreign goroutines.
package arbiter
