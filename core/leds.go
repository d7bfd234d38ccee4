package core

// GreenPulseMs is how long the green LED lights on a non-META frame
// commit.
const GreenPulseMs = 120

// RedAckPulseMs is how long the red LED lights to acknowledge a
// command selection.
const RedAckPulseMs = 150

// RedStalePulseMs is how long the red LED lights on each stale-link
// pulse.
const RedStalePulseMs = 50

// ledState tracks one LED's output. A pulsing LED turns itself off once
// Tick observes now >= expiry; a directly-driven LED (the waiting-state
// breathing animation) ignores expiry entirely until pulsed again.
type ledState struct {
	on      bool
	pulsing bool
	expiry  uint32
}

func (s *ledState) pulse(now, durationMs uint32) {
	s.on = true
	s.pulsing = true
	s.expiry = now + durationMs
}

func (s *ledState) setDirect(on bool) {
	s.on = on
	s.pulsing = false
}

func (s *ledState) tick(now uint32) {
	if s.pulsing && s.on && now >= s.expiry {
		s.on = false
		s.pulsing = false
	}
}

// LEDs drives the two heartbeat/ack LEDs through the injected GPIO HAL.
// It holds no behavior of its own beyond on/off and pulse-with-expiry;
// the watchdog decides when pulses fire and when breathing takes over.
type LEDs struct {
	greenPin GPIOPin
	redPin   GPIOPin
	green    ledState
	red      ledState
}

// NewLEDs constructs an LEDs driver bound to the given output pins.
// Construction does not touch the GPIO HAL; the pins must be configured
// as outputs before the first pulse or direct set drives them.
func NewLEDs(greenPin, redPin GPIOPin) LEDs {
	return LEDs{greenPin: greenPin, redPin: redPin}
}

// PulseGreen lights the green LED for GreenPulseMs.
func (l *LEDs) PulseGreen(now uint32) {
	l.green.pulse(now, GreenPulseMs)
	l.apply()
}

// PulseRed lights the red LED for the given duration.
func (l *LEDs) PulseRed(now uint32, durationMs uint32) {
	l.red.pulse(now, durationMs)
	l.apply()
}

// SetRedDirect drives the red LED without an expiry, used by the
// waiting-state breathing animation.
func (l *LEDs) SetRedDirect(on bool) {
	l.red.setDirect(on)
	l.apply()
}

// ExtinguishAll turns both LEDs off immediately, used on a watchdog
// trip.
func (l *LEDs) ExtinguishAll() {
	l.green.setDirect(false)
	l.red.setDirect(false)
	l.apply()
}

// Tick expires any pulse whose time has come.
func (l *LEDs) Tick(now uint32) {
	greenBefore, redBefore := l.green.on, l.red.on
	l.green.tick(now)
	l.red.tick(now)
	if greenBefore != l.green.on || redBefore != l.red.on {
		l.apply()
	}
}

// GreenOn and RedOn report current LED state, mainly for tests.
func (l *LEDs) GreenOn() bool { return l.green.on }
func (l *LEDs) RedOn() bool   { return l.red.on }

func (l *LEDs) apply() {
	drv := MustGPIO()
	drv.SetPin(l.greenPin, l.green.on)
	drv.SetPin(l.redPin, l.red.on)
}
