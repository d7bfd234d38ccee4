package core

// Heartbeat/watchdog defaults and bounds.
const (
	DefaultHeartbeatIntervalMs = 3000
	MinHeartbeatIntervalMs     = 250

	DefaultFrameTimeoutMs = 10000
	MinFrameTimeoutMs     = 5000
	MaxFrameTimeoutMs     = 60000

	MinStaleThresholdMs = 500

	StalePulseIntervalMs = 1000
	WaitAnimIntervalMs   = 250

	WaitAnimFrames = 4
)

// LinkState is the host link's liveness record. It is mutated by the
// frame router on every commit and read by the watchdog every tick.
type LinkState struct {
	HaveData    bool
	LastFrameMs uint32

	HeartbeatIntervalMs uint32
	FrameTimeoutMs      uint32
	DisplayTimeoutMs    uint32
}

// NewLinkState returns a LinkState at its documented defaults.
func NewLinkState() LinkState {
	return LinkState{
		HeartbeatIntervalMs: DefaultHeartbeatIntervalMs,
		FrameTimeoutMs:      DefaultFrameTimeoutMs,
	}
}

// Refresh marks the link alive as of now, called on every frame commit
// (META-only included).
func (l *LinkState) Refresh(now uint32) {
	l.HaveData = true
	l.LastFrameMs = now
}

// ApplyHeartbeatIntervalMs applies a META interval=<seconds> value,
// deriving and clamping HeartbeatIntervalMs, FrameTimeoutMs, and
// DisplayTimeoutMs. It is a no-op (malformed META is ignored, defaults
// retained) unless intervalMs is nonzero.
func (l *LinkState) ApplyHeartbeatIntervalMs(intervalMs uint32) {
	if intervalMs == 0 {
		return
	}
	l.HeartbeatIntervalMs = maxUint32(MinHeartbeatIntervalMs, intervalMs)
	l.FrameTimeoutMs = clampUint32(intervalMs*10, MinFrameTimeoutMs, MaxFrameTimeoutMs)
	l.DisplayTimeoutMs = l.FrameTimeoutMs
}

func clampUint32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// Watchdog is the link liveness and heartbeat-LED supervisor. It owns
// the stale-pulse and waiting-animation periodic timers; the frame
// router and encoder handling mutate LinkState and the model
// independently, and Watchdog.Tick observes the result once per loop
// iteration.
type Watchdog struct {
	Link LinkState

	stalePulse PeriodicTimer
	waitAnim   PeriodicTimer
	animFrame  int
	redBreath  bool
}

// NewWatchdog returns a Watchdog with default LinkState and its
// periodic timers configured.
func NewWatchdog() Watchdog {
	return Watchdog{
		Link:       NewLinkState(),
		stalePulse: PeriodicTimer{IntervalMs: StalePulseIntervalMs},
		waitAnim:   PeriodicTimer{IntervalMs: WaitAnimIntervalMs},
	}
}

// WaitAnimFrame returns the current waiting-screen spinner frame index
// (0..3), cycling through '|','/','-','\'.
func (w *Watchdog) WaitAnimFrame() int {
	return w.animFrame
}

// Tick advances the watchdog by one loop iteration. It mutates model
// and buf on a watchdog trip and drives leds directly; it returns true
// if the display needs repainting as a result.
func (w *Watchdog) Tick(now uint32, model *Model, buf *ScrollBuffer, leds *LEDs) bool {
	repaint := false

	if w.Link.HaveData {
		if Elapsed(now, w.Link.LastFrameMs) > w.Link.FrameTimeoutMs {
			w.trip(now, model, buf, leds)
			repaint = true
		} else {
			staleThreshold := clampUint32(w.Link.HeartbeatIntervalMs*2, MinStaleThresholdMs, w.Link.FrameTimeoutMs)
			if Elapsed(now, w.Link.LastFrameMs) >= staleThreshold {
				if w.stalePulse.Due(now) {
					leds.PulseRed(now, RedStalePulseMs)
				}
			} else {
				w.stalePulse.Reset()
			}
		}
		return repaint
	}

	if w.waitAnim.Due(now) {
		w.animFrame = (w.animFrame + 1) % WaitAnimFrames
		w.redBreath = !w.redBreath
		leds.SetRedDirect(w.redBreath)
		repaint = true
	}
	return repaint
}

const waitingLine = "Waiting for data..."

func (w *Watchdog) trip(now uint32, model *Model, buf *ScrollBuffer, leds *LEDs) {
	RecordTiming(EvtWatchdogTrip, 0, now, w.Link.FrameTimeoutMs, 0)
	w.Link.HaveData = false
	model.SetMode(now, ModeTelemetry)
	model.RequestedMode = ModeTelemetry
	model.CommandsCount = 0
	model.ResetCommandMenu()
	model.Scroll = 0
	buf.Clear()
	buf.Push([]byte(waitingLine))
	leds.ExtinguishAll()
	w.stalePulse.Reset()
	w.waitAnim.Reset()
	w.animFrame = 0
	w.redBreath = false
}
