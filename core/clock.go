package core

// Clock is the monotonic-millisecond-clock external collaborator: use a
// monotonic clock abstraction, never subtract unsigned timestamps
// without accounting for wrap. All subtractions in this package are
// computed as now-minus-prev so a 32-bit millisecond wrap (roughly
// every 49 days) produces the correct elapsed duration without
// special-casing.
type Clock interface {
	// NowMS returns the current monotonic time in milliseconds.
	NowMS() uint32
}

// Elapsed returns now-since, correct across a uint32 wrap.
func Elapsed(now, since uint32) uint32 {
	return now - since
}

// SystemClock reads the platform time source registered by target
// code: a settable fake counter under plain `go test`, a real
// hardware-backed counter under `tinygo`.
type SystemClock struct{}

// NowMS implements Clock.
func (SystemClock) NowMS() uint32 {
	return getSystemMillis()
}

// SetSystemMillis overrides the fake clock driving SystemClock. Only
// meaningful on the `!tinygo` build; a no-op is not provided on tinygo
// because hardware time cannot be rewritten.
func SetSystemMillis(ms uint32) {
	setSystemMillis(ms)
}
