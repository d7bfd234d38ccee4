package core

import (
	"strings"
	"testing"
)

func TestRecordTimingWrapsRing(t *testing.T) {
	ClearTimingRing()
	defer ClearTimingRing()

	for i := 0; i < TimingRingSize+5; i++ {
		RecordTiming(EvtFrameCommit, 0, uint32(i), 0, 0)
	}

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	DumpTimingRing()

	count := 0
	for _, l := range lines {
		if strings.Contains(l, "FRAME_COMMIT") {
			count++
		}
	}
	if count != TimingRingSize {
		t.Fatalf("expected ring to hold exactly %d events after wrap, got %d", TimingRingSize, count)
	}
}

func TestClearTimingRingEmptiesDump(t *testing.T) {
	RecordTiming(EvtGesture, uint8(GestureLong), 42, 0, 0)
	ClearTimingRing()

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	DumpTimingRing()

	for _, l := range lines {
		if strings.Contains(l, "GESTURE") {
			t.Fatalf("expected cleared ring to report no events, got %q", l)
		}
	}
}

func TestModelSetModeRecordsOnlyOnChange(t *testing.T) {
	ClearTimingRing()
	defer ClearTimingRing()

	var m Model
	m.SetMode(100, ModeTelemetry) // already ModeTelemetry: no-op
	m.SetMode(200, ModeCommands)  // real transition
	m.SetMode(200, ModeCommands)  // repeat: no-op

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	DumpTimingRing()

	count := 0
	for _, l := range lines {
		if strings.Contains(l, "MODE_CHANGE") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 recorded mode change, got %d", count)
	}
	if m.Mode != ModeCommands {
		t.Fatalf("expected mode to end at ModeCommands, got %v", m.Mode)
	}
}
