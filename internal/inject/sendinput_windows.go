//go:build windows

package inject

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const inputKeyboard = 1

// keybdInput mirrors the Win32 INPUT structure for INPUT_KEYBOARD. The
// trailing padding keeps the layout at the size SendInput expects on 64-bit
// Windows, where INPUT embeds the larger MOUSEINPUT union member.
type keybdInput struct {
	inputType uint32
	_         uint32 // alignment
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
	_         [8]byte // pad to sizeof(INPUT)
}

// SendInput injects the descriptors through the Win32 SendInput call and
// returns the number of events the OS accepted.
func SendInput(inputs []Input) int {
	if len(inputs) == 0 {
		return 0
	}
	raw := make([]keybdInput, len(inputs))
	for i, in := range inputs {
		raw[i] = keybdInput{
			inputType: inputKeyboard,
			vk:        in.Key,
			scan:      in.ScanCode,
			flags:     in.Flags,
		}
	}
	n, _, _ := procSendInput.Call(
		uintptr(len(raw)),
		uintptr(unsafe.Pointer(&raw[0])),
		unsafe.Sizeof(raw[0]),
	)
	return int(n)
}
