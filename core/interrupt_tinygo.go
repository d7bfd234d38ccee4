//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts for the encoder's read-modify-write
// of its accumulator and returns the state to hand back to
// restoreInterrupts. Pairs with a deferred restoreInterrupts call at
// every call site; never call it without one.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
