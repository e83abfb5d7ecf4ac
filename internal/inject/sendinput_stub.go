//go:build !windows

package inject

// SendInput is unavailable off Windows; it accepts nothing. Embedders on
// other platforms must supply their own Injector.
func SendInput(inputs []Input) int {
	return 0
}
