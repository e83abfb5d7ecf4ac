package key

import "fmt"

// Action is the platform message code of a key notification. The arbiter
// treats actions as opaque; the two canonical values below correspond to the
// key-down and key-up messages at the OS layer.
type Action int

// Canonical action codes (Win32 WM_KEYDOWN / WM_KEYUP).
const (
	ActionDown Action = 0x0100
	ActionUp   Action = 0x0101
)

// String returns the canonical name of the action, or its numeric value for
// non-canonical codes.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "keydown"
	case ActionUp:
		return "keyup"
	default:
		return fmt.Sprintf("action(0x%04x)", int(a))
	}
}

// Event represents a single key notification as delivered by the platform.
type Event struct {
	// Key is the virtual-key code.
	Key int

	// ScanCode is the hardware scan code. Synthesized re-entries are
	// matched primarily on this field at the OS layer.
	ScanCode int

	// Action is the platform message code (key down or key up).
	Action Action

	// Char is the character code point for the key, or 0 when the key
	// produces no character.
	Char rune

	// Extended reports the extended-key bit of the notification.
	Extended bool

	// WasDown reports the prior physical state of the key: true when the
	// key was already down when this notification was generated.
	WasDown bool
}

// Fingerprint is the comparable tuple of event fields used to recognize a
// synthesized event on re-entry. Two events with equal fingerprints are
// indistinguishable to the arbiter.
type Fingerprint Event

// Fingerprint returns the event's fingerprint.
func (e Event) Fingerprint() Fingerprint {
	return Fingerprint(e)
}

// IsDown returns true for key-down events.
func (e Event) IsDown() bool {
	return e.Action == ActionDown
}

// String returns a compact representation for logs.
func (e Event) String() string {
	ch := "none"
	if e.Char != 0 {
		ch = fmt.Sprintf("%q", e.Char)
	}
	return fmt.Sprintf("%s key=%d scan=%d char=%s extended=%t wasDown=%t",
		e.Action, e.Key, e.ScanCode, ch, e.Extended, e.WasDown)
}
