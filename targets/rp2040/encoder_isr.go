//go:build tinygo

package main

import (
	"machine"

	"statusconsole/core"
)

// wireEncoderInterrupts configures the quadrature pins as pulled-up
// inputs and arms a rising-and-falling edge interrupt on each. Both
// handlers just resample both pins and hand the pair to the engine's
// encoder; core.Encoder.OnEdge owns the actual decode and must stay
// fast, since it runs in interrupt context.
func wireEncoderInterrupts(eng *core.Engine, pinA, pinB machine.Pin) error {
	pinA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinB.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	handler := func(machine.Pin) {
		eng.Encoder.OnEdge(pinA.Get(), pinB.Get())
	}

	if err := pinA.SetInterrupt(machine.PinRising|machine.PinFalling, handler); err != nil {
		return err
	}
	return pinB.SetInterrupt(machine.PinRising|machine.PinFalling, handler)
}
