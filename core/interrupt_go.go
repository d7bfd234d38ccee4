//go:build !tinygo

package core

// interruptState stands in for the tinygo build's interrupt.State when
// compiling for a host GOOS/GOARCH (tests, the host device package).
// There's no interrupt controller to mask, so the two functions below
// just satisfy the call sites.
type interruptState struct{}

func disableInterrupts() interruptState {
	return interruptState{}
}

func restoreInterrupts(_ interruptState) {}
