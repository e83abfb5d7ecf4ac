// Package inject defines the synthesized-input descriptor and the injector
// contract the arbiter uses to feed unhandled key events back into the OS
// input pipeline.
//
// On Windows the SendInput function provides the real implementation; other
// platforms get a stub that accepts nothing. Tests and the console simulator
// substitute their own Injector values, so nothing above this package depends
// on the OS call.
package inject
