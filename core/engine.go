package core

// TickIntervalMs is the cooperative main loop's rate limiter, not a
// synchronization primitive.
const TickIntervalMs = 5

// EnginePins names the GPIO pins the engine polls or drives directly.
// The encoder pins are not listed here: they are wired to interrupts by
// target-specific code, which calls Engine.Encoder.OnEdge from ISR
// context.
type EnginePins struct {
	Button GPIOPin
	Green  GPIOPin
	Red    GPIOPin
}

// Engine is the single owned struct threading the scroll buffer, frame
// parser, UI model, encoder, button classifier, and watchdog through
// the main loop. LED and display handles are injected via the
// GPIO/Display HALs so tests can substitute fakes.
type Engine struct {
	Buffer  ScrollBuffer
	Parser  FrameParser
	Router  Router
	Model   Model
	Encoder Encoder
	Button  ButtonClassifier
	Watch   Watchdog
	LEDs    LEDs

	pins  EnginePins
	dirty bool
}

// NewEngine wires an Engine to the given pins. It does not touch the
// GPIO driver itself; callers configure pin directions before or after
// construction as convenient.
func NewEngine(pins EnginePins) *Engine {
	e := &Engine{
		Button: NewButtonClassifier(),
		Watch:  NewWatchdog(),
		LEDs:   NewLEDs(pins.Green, pins.Red),
		pins:   pins,
		dirty:  true,
	}
	e.Buffer.Push([]byte(waitingLine))
	return e
}

// Boot configures pins, clears the display, and emits the one-time
// startup announcement ("Starting up", emitted once at boot after
// display init).
func (e *Engine) Boot() {
	ClearTimingRing()

	drv := MustGPIO()
	drv.ConfigureInputPullUp(e.pins.Button)
	drv.ConfigureOutput(e.pins.Green)
	drv.ConfigureOutput(e.pins.Red)

	MustDisplay().Clear()

	WriteLine(MustTransport(), "Starting up")
	DebugAsync("engine booted")
	e.dirty = true
}

// Tick runs one iteration of the main loop: it drains available
// transport bytes, routes any completed frame, applies encoder
// movement and button gestures, advances the watchdog, and repaints if
// anything changed.
func (e *Engine) Tick(now uint32) {
	e.drainTransport(now)
	e.applyEncoder(now)
	e.applyButton(now)

	if e.Watch.Tick(now, &e.Model, &e.Buffer, &e.LEDs) {
		e.dirty = true
	}
	e.LEDs.Tick(now)

	if e.dirty {
		e.paint(now)
		e.dirty = false
	}
}

func (e *Engine) drainTransport(now uint32) {
	transport := MustTransport()
	for transport.Available() {
		b, err := transport.ReadByte()
		if err != nil {
			return
		}
		if frame, ok := e.Parser.Feed(b); ok {
			RecordTiming(EvtFrameCommit, 0, now, uint32(frame.Len()), 0)
			e.Router.Route(frame, &e.Model, &e.Buffer, &e.Watch.Link, &e.LEDs, now)
			e.dirty = true
		}
	}
}

func (e *Engine) applyEncoder(now uint32) {
	delta := e.Encoder.GetMovement()
	if delta == 0 {
		return
	}

	switch e.Model.Mode {
	case ModeTelemetry:
		e.Model.Scroll = clampInt(e.Model.Scroll+delta, 0, maxInt(0, e.Buffer.Size()-DisplayRows))
	case ModeCommands, ModeCommandsWaiting:
		total := e.Model.Total()
		e.Model.CursorIndex = clampInt(e.Model.CursorIndex+signInt(delta), 0, maxInt(0, total-1))
		if e.Model.CursorIndex < e.Model.WindowStart {
			e.Model.WindowStart = e.Model.CursorIndex
		} else if e.Model.CursorIndex > e.Model.WindowStart+DisplayRows-1 {
			e.Model.WindowStart = e.Model.CursorIndex - (DisplayRows - 1)
		}
		e.Model.WindowStart = clampInt(e.Model.WindowStart, 0, maxInt(0, total-DisplayRows))
	}
	e.dirty = true
}

func (e *Engine) applyButton(now uint32) {
	pressed := !MustGPIO().ReadPin(e.pins.Button) // pull-up, logic-low = pressed
	gesture := e.Button.Feed(now, pressed)
	if gesture == GestureNone {
		return
	}

	switch gesture {
	case GestureLong:
		e.onLongPress(now)
	case GestureDouble:
		e.onDoublePress(now)
	}
	e.dirty = true
}

func (e *Engine) onLongPress(now uint32) {
	switch e.Model.Mode {
	case ModeTelemetry:
		e.Model.RequestedMode = ModeCommands
		e.Model.SetMode(now, ModeCommandsWaiting)
		e.Model.ResetCommandMenu()
		WriteLine(MustTransport(), "REQ COMMANDS")
	case ModeCommands, ModeCommandsWaiting:
		e.Model.RequestedMode = ModeTelemetry
		e.Model.SetMode(now, ModeTelemetry)
		e.Model.Scroll = 0
	}
}

func (e *Engine) onDoublePress(now uint32) {
	if e.Model.Mode != ModeCommands {
		return
	}

	if e.Model.CursorIndex == e.Model.CommandsCount {
		e.Model.RequestedMode = ModeTelemetry
		e.Model.SetMode(now, ModeTelemetry)
		e.Model.Scroll = 0
		return
	}

	id := e.Model.Commands[e.Model.CursorIndex].ID()
	WriteLine(MustTransport(), "SELECT "+string(id))
	e.LEDs.PulseRed(now, RedAckPulseMs)
}

func (e *Engine) paint(now uint32) {
	rows := Render(&e.Model, &e.Buffer, e.Watch.Link.HaveData, e.Watch.WaitAnimFrame(), e.Watch.Link.DisplayTimeoutMs)
	Paint(rows)
}
