package console

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyrelay/internal/key"
)

// Virtual-key codes for the special keys the simulator understands.
const (
	vkBackspace = 0x08
	vkTab       = 0x09
	vkEnter     = 0x0D
	vkEscape    = 0x1B
	vkLeft      = 0x25
	vkUp        = 0x26
	vkRight     = 0x27
	vkDown      = 0x28
	vkDelete    = 0x2E
)

// translateKey maps a terminal key press onto a platform-shaped key-down
// event. The mapping is deliberately naive: letters and digits take their
// ASCII virtual-key code, everything else keeps its rune, and the scan code
// mirrors the virtual-key code. This is a simulator convention, not layout
// handling.
func translateKey(ev *tcell.EventKey) key.Event {
	e := key.Event{Action: key.ActionDown}

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		e.Char = r
		if r >= 'a' && r <= 'z' {
			e.Key = int(unicode.ToUpper(r))
		} else {
			e.Key = int(r)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Key = vkBackspace
	case tcell.KeyTab:
		e.Key = vkTab
		e.Char = '\t'
	case tcell.KeyEnter:
		e.Key = vkEnter
		e.Char = '\r'
	case tcell.KeyEscape:
		e.Key = vkEscape
	case tcell.KeyLeft:
		e.Key = vkLeft
		e.Extended = true
	case tcell.KeyUp:
		e.Key = vkUp
		e.Extended = true
	case tcell.KeyRight:
		e.Key = vkRight
		e.Extended = true
	case tcell.KeyDown:
		e.Key = vkDown
		e.Extended = true
	case tcell.KeyDelete:
		e.Key = vkDelete
		e.Extended = true
	default:
		e.Key = int(ev.Key())
	}

	e.ScanCode = e.Key
	return e
}
