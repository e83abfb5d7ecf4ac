package inject

import "github.com/dshills/keyrelay/internal/key"

// Input flags, mirroring KEYBDINPUT dwFlags.
const (
	FlagExtendedKey = 0x0001
	FlagKeyUp       = 0x0002
	FlagScanCode    = 0x0008
)

// Input describes one synthesized key event in the platform's native shape.
type Input struct {
	// Key is the virtual-key code.
	Key uint16

	// ScanCode is the hardware scan code. Re-entered events are matched
	// against this field, so it must round-trip exactly.
	ScanCode uint16

	// Flags carries the key-up, extended-key, and scan-code bits.
	Flags uint32

	// Char is the character code point of the source event. The OS call
	// ignores it; loopback injectors use it to reconstruct the event.
	Char rune

	// WasDown is the prior key state of the source event. Like Char it is
	// ignored by the OS call (Windows regenerates the bit from its own key
	// state) and exists so a loopback re-entry reproduces the full
	// fingerprint, key repeats included.
	WasDown bool
}

// Injector feeds synthesized inputs into the OS input pipeline and returns
// the number of events the OS accepted. Zero means total injection failure.
type Injector func(inputs []Input) int

// FromEvent builds the synthesized-input descriptor for a key event.
func FromEvent(e key.Event) Input {
	in := Input{
		Key:      uint16(e.Key),
		ScanCode: uint16(e.ScanCode),
		Flags:    FlagScanCode,
		Char:     e.Char,
		WasDown:  e.WasDown,
	}
	if e.Action == key.ActionUp {
		in.Flags |= FlagKeyUp
	}
	if e.Extended {
		in.Flags |= FlagExtendedKey
	}
	return in
}

// ToEvent reconstructs the key event a descriptor produces on re-entry.
// All six fingerprint fields round-trip through FromEvent.
func (in Input) ToEvent() key.Event {
	e := key.Event{
		Key:      int(in.Key),
		ScanCode: int(in.ScanCode),
		Action:   key.ActionDown,
		Char:     in.Char,
		Extended: in.Flags&FlagExtendedKey != 0,
		WasDown:  in.WasDown,
	}
	if in.Flags&FlagKeyUp != 0 {
		e.Action = key.ActionUp
	}
	return e
}
