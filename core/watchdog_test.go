package core

import "testing"

func TestWatchdogTripsAfterFrameTimeout(t *testing.T) {
	w := NewWatchdog()
	w.Link.FrameTimeoutMs = 10000
	w.Link.Refresh(0)

	var model Model
	var buf ScrollBuffer
	leds, _ := newTestLEDs()

	if repaint := w.Tick(10000, &model, &buf, &leds); repaint {
		t.Fatalf("expected no trip exactly at the timeout boundary")
	}
	if !w.Link.HaveData {
		t.Fatalf("expected link still alive at the boundary")
	}

	if repaint := w.Tick(10001, &model, &buf, &leds); !repaint {
		t.Fatalf("expected a trip just past the timeout")
	}
	if w.Link.HaveData {
		t.Fatalf("expected have_data cleared on trip")
	}
	if model.Mode != ModeTelemetry || model.RequestedMode != ModeTelemetry {
		t.Fatalf("expected mode reset to Telemetry on trip, got %v/%v", model.Mode, model.RequestedMode)
	}
	if model.CommandsCount != 0 {
		t.Fatalf("expected commands cleared on trip")
	}
	if leds.GreenOn() || leds.RedOn() {
		t.Fatalf("expected LEDs extinguished on trip")
	}
}

func TestWatchdogStalePulsesRed(t *testing.T) {
	w := NewWatchdog()
	w.Link.HeartbeatIntervalMs = 1000
	w.Link.FrameTimeoutMs = 10000
	w.Link.Refresh(0)

	var model Model
	var buf ScrollBuffer
	leds, _ := newTestLEDs()

	// stale_threshold = clamp(1000*2, 500, 10000) = 2000
	w.Tick(1999, &model, &buf, &leds)
	if leds.RedOn() {
		t.Fatalf("expected no stale pulse before the stale threshold")
	}

	w.Tick(2000, &model, &buf, &leds)
	if leds.RedOn() {
		t.Fatalf("expected the first stale tick to arm, not fire")
	}

	w.Tick(3000, &model, &buf, &leds)
	if !leds.RedOn() {
		t.Fatalf("expected a stale pulse after another full interval")
	}
}

func TestWatchdogWaitingAnimationAdvances(t *testing.T) {
	w := NewWatchdog()

	var model Model
	var buf ScrollBuffer
	leds, _ := newTestLEDs()

	w.Tick(0, &model, &buf, &leds)
	if w.WaitAnimFrame() != 0 {
		t.Fatalf("expected anim frame to start at 0, got %d", w.WaitAnimFrame())
	}

	w.Tick(250, &model, &buf, &leds)
	if w.WaitAnimFrame() != 1 {
		t.Fatalf("expected anim frame to advance to 1 after 250ms, got %d", w.WaitAnimFrame())
	}
}

func TestLinkStateApplyHeartbeatClampsFrameTimeout(t *testing.T) {
	l := NewLinkState()

	l.ApplyHeartbeatIntervalMs(100) // below MinHeartbeatIntervalMs
	if l.HeartbeatIntervalMs != MinHeartbeatIntervalMs {
		t.Fatalf("expected heartbeat interval clamped to %d, got %d", MinHeartbeatIntervalMs, l.HeartbeatIntervalMs)
	}

	l.ApplyHeartbeatIntervalMs(100000) // would drive frame timeout above the max
	if l.FrameTimeoutMs != MaxFrameTimeoutMs {
		t.Fatalf("expected frame timeout clamped to %d, got %d", MaxFrameTimeoutMs, l.FrameTimeoutMs)
	}
}
