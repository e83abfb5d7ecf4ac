// Package console provides an interactive simulator for the arbiter.
//
// Terminal key presses are translated into platform-shaped key events and
// delivered through the arbiter exactly as OS notifications would be. With
// the loopback injector, unhandled events are posted back into the console's
// own event queue instead of the OS input pipeline, so the full
// dispatch/redispatch round trip is observable on any platform.
//
// Terminal input carries no key-up transitions or repeat state, so the
// simulator only ever synthesizes key-down events with was-down unset.
package console
