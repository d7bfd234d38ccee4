package core

import "testing"

// quarterStepDriver feeds the canonical 4-state Gray cycle to an Encoder,
// one quarter-step per call, continuing from wherever the cycle left off
// across multiple Drive calls so tests can interleave driving with
// GetMovement reads.
type quarterStepDriver struct {
	seq  [][2]bool
	next int
}

func newCWDriver() *quarterStepDriver {
	return &quarterStepDriver{seq: [][2]bool{{false, false}, {false, true}, {true, true}, {true, false}}, next: 1}
}

func newCCWDriver() *quarterStepDriver {
	return &quarterStepDriver{seq: [][2]bool{{false, false}, {true, false}, {true, true}, {false, true}}, next: 1}
}

func (d *quarterStepDriver) Drive(e *Encoder, n int) {
	for i := 0; i < n; i++ {
		s := d.seq[d.next%4]
		e.OnEdge(s[0], s[1])
		d.next++
	}
}

func driveQuarterStepsCW(e *Encoder, n int) {
	newCWDriver().Drive(e, n)
}

func driveQuarterStepsCCW(e *Encoder, n int) {
	newCCWDriver().Drive(e, n)
}

func TestEncoderOneDetentClockwise(t *testing.T) {
	var e Encoder
	driveQuarterStepsCW(&e, 4)

	if got := e.GetMovement(); got != 1 {
		t.Fatalf("expected +1 detent, got %d", got)
	}
	if got := e.GetMovement(); got != 0 {
		t.Fatalf("expected no further movement without new edges, got %d", got)
	}
}

func TestEncoderOneDetentCounterClockwise(t *testing.T) {
	var e Encoder
	driveQuarterStepsCCW(&e, 4)

	if got := e.GetMovement(); got != -1 {
		t.Fatalf("expected -1 detent, got %d", got)
	}
}

func TestEncoderNoisyEdgeIsIgnored(t *testing.T) {
	var e Encoder
	// Bounce: go to 01 then immediately back to 00 (0b0001 then 0b0100,
	// i.e. +1 then -1) should cancel out exactly.
	e.OnEdge(false, true)  // 00 -> 01: +1
	e.OnEdge(false, false) // 01 -> 00: -1
	if got := e.GetMovement(); got != 0 {
		t.Fatalf("expected bounce to cancel out, got %d", got)
	}
}

// TestEncoderResiduePreservedAcrossRace injects 7 quarter-steps (one
// full detent plus 3 residual quarters), then calls GetMovement twice,
// each time advancing by one more quarter-step; the residue must never
// be dropped.
func TestEncoderResiduePreservedAcrossRace(t *testing.T) {
	var e Encoder
	d := newCWDriver()

	d.Drive(&e, 7)
	if got := e.GetMovement(); got != 1 {
		t.Fatalf("expected +1 detent from 7 quarters, got %d", got)
	}

	// One more quarter-step brings the residue (3) to 4 -> another full detent.
	d.Drive(&e, 1)
	if got := e.GetMovement(); got != 1 {
		t.Fatalf("expected +1 detent after residue completes, got %d", got)
	}
}

func TestEncoderGetMovementIdempotentWhenUnchanged(t *testing.T) {
	var e Encoder
	if got := e.GetMovement(); got != 0 {
		t.Fatalf("expected 0 on a fresh encoder, got %d", got)
	}
}

func TestEncoderManyDetentsSumPreserved(t *testing.T) {
	var e Encoder
	d := newCWDriver()
	const detents = 50
	d.Drive(&e, detents*4+2)

	total := 0
	total += e.GetMovement()
	d.Drive(&e, 2) // complete the residual quarter pair
	total += e.GetMovement()

	if total != detents+1 {
		t.Fatalf("expected total %d detents, got %d", detents+1, total)
	}
}
