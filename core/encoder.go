package core

// quadratureTable maps a 4-bit (prevState<<2)|state transition to a
// quarter-step delta, per the fixed table:
//
//	0b0001, 0b0111, 0b1110, 0b1000 -> +1
//	0b0010, 0b0100, 0b1101, 0b1011 -> -1
//	everything else -> 0 (bounce or missed edge)
var quadratureTable = [16]int8{
	0b0000: 0,
	0b0001: +1,
	0b0010: -1,
	0b0011: 0,
	0b0100: -1,
	0b0101: 0,
	0b0110: 0,
	0b0111: +1,
	0b1000: +1,
	0b1001: 0,
	0b1010: 0,
	0b1011: -1,
	0b1100: 0,
	0b1101: -1,
	0b1110: +1,
	0b1111: 0,
}

// Encoder decodes quadrature pin transitions into signed detent counts.
// prevState/position/changed are the triple shared between the pin-change
// ISR (the sole writer via OnEdge) and the main loop (the sole reader, via
// GetMovement, inside a short critical section).
type Encoder struct {
	prevState uint8
	position  int32
	changed   bool
}

// OnEdge is called from interrupt context on every edge of either encoder
// pin with both pin levels as sampled by the ISR handler. It looks up the
// transition and accumulates any resulting quarter-step into position.
// It must stay fast and non-blocking: only the table lookup and the
// accumulator update happen here, per critical-section discipline.
func (e *Encoder) OnEdge(pinA, pinB bool) {
	var state uint8
	if pinA {
		state |= 0b10
	}
	if pinB {
		state |= 0b01
	}

	idx := (e.prevState << 2) | state
	delta := quadratureTable[idx&0xF]
	e.prevState = state

	if delta != 0 {
		e.position += int32(delta)
		e.changed = true
	}
}

// GetMovement is called from the main loop. It returns the number of full
// detents (quarter-steps >> 2) accumulated since the last call, leaving
// any sub-detent residue in position so no quarter-step is ever dropped
// across interleavings with the ISR. It returns 0 without touching
// position when nothing changed since the last call.
func (e *Encoder) GetMovement() int {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if !e.changed {
		return 0
	}

	detents := e.position >> 2
	e.position &= 0x3
	e.changed = false
	return int(detents)
}
