package core

// Mode is the display's current state.
type Mode uint8

const (
	ModeTelemetry Mode = iota
	ModeCommandsWaiting
	ModeCommands
)

// CommandsCapacity bounds the stored command list; the synthetic
// trailing "Exit" entry is not stored here.
const CommandsCapacity = 12

// ExitLabel is painted for the synthetic last entry of the command menu.
const ExitLabel = "Exit"

// Model is the UI state machine: display mode, the user's intent, scroll
// position, and the command menu cursor/window. It is owned exclusively
// by the main loop; nothing here is touched from interrupt context.
type Model struct {
	Mode          Mode
	RequestedMode Mode

	Scroll int

	Commands      [CommandsCapacity]Command
	CommandsCount int

	CursorIndex int
	WindowStart int
}

// Total is the navigable command-menu size: the stored commands plus
// the synthetic Exit entry.
func (m *Model) Total() int {
	return m.CommandsCount + 1
}

// SetMode transitions to mode, recording a timing event when it
// actually changes the display mode. A repeated SetMode to the mode
// already in effect is a silent no-op.
func (m *Model) SetMode(now uint32, mode Mode) {
	if m.Mode != mode {
		RecordTiming(EvtModeChange, uint8(mode), now, 0, 0)
	}
	m.Mode = mode
}

// ResetCommandMenu clears the cursor and window back to the top, used
// both when a COMMANDS frame commits and when the watchdog drops the
// link.
func (m *Model) ResetCommandMenu() {
	m.CursorIndex = 0
	m.WindowStart = 0
}

// ClampScroll re-clamps Scroll to [0, max(0, size-4)] after the backing
// buffer's size has changed.
func (m *Model) ClampScroll(size int) {
	m.Scroll = clampInt(m.Scroll, 0, maxInt(0, size-4))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func signInt(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
