package script

import "errors"

// Sentinel errors for the script package.
var (
	// ErrNoHook is returned when a script defines no on_key function.
	ErrNoHook = errors.New("script does not define an on_key function")

	// ErrClosed is returned when a closed delegate is used.
	ErrClosed = errors.New("script delegate is closed")
)
