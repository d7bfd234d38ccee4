package core

// Button debounce/classification parameters.
const (
	ButtonDebounceMs     = 20
	ButtonLongPressMs    = 700
	ButtonDoublePressGap = 350
)

// Gesture is the classifier's output on a completed press/release.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureLong
	GestureShort
	GestureDouble
)

// ButtonClassifier debounces a logic-low-is-pressed button and
// classifies each release as long, short, or (a short release within
// the double-press gap of the previous one) double. A bare short press
// that is not part of a double has no UI effect, so GestureShort is
// reported but most callers ignore it.
type ButtonClassifier struct {
	DebounceMs     uint32
	LongPressMs    uint32
	DoublePressGap uint32

	pressed            bool
	lastTransitionMs   uint32
	haveLastTransition bool
	pressStartMs       uint32
	haveLastShort      bool
	lastShortReleaseMs uint32
}

// NewButtonClassifier returns a classifier configured with the default
// debounce, long-press, and double-press-gap thresholds.
func NewButtonClassifier() ButtonClassifier {
	return ButtonClassifier{
		DebounceMs:     ButtonDebounceMs,
		LongPressMs:    ButtonLongPressMs,
		DoublePressGap: ButtonDoublePressGap,
	}
}

// Feed is called once per tick with the raw (already pulled-up,
// logic-low-is-pressed) pin reading. pinLow true means the button is
// currently held down.
func (c *ButtonClassifier) Feed(now uint32, pinLow bool) Gesture {
	if pinLow == c.pressed {
		return GestureNone
	}
	if c.haveLastTransition && Elapsed(now, c.lastTransitionMs) < c.DebounceMs {
		return GestureNone
	}

	c.lastTransitionMs = now
	c.haveLastTransition = true
	c.pressed = pinLow

	if pinLow {
		c.pressStartMs = now
		return GestureNone
	}

	held := Elapsed(now, c.pressStartMs)
	if held >= c.LongPressMs {
		RecordTiming(EvtGesture, uint8(GestureLong), now, held, 0)
		return GestureLong
	}

	isDouble := c.haveLastShort && Elapsed(now, c.lastShortReleaseMs) <= c.DoublePressGap
	c.lastShortReleaseMs = now
	c.haveLastShort = true
	if isDouble {
		RecordTiming(EvtGesture, uint8(GestureDouble), now, held, 0)
		return GestureDouble
	}
	RecordTiming(EvtGesture, uint8(GestureShort), now, held, 0)
	return GestureShort
}
