//go:build tinygo

package core

import "sync/atomic"

// systemMillisValue is updated by target code (see targets/rp2040/clock.go)
// from the hardware timer once per loop tick.
var systemMillisValue uint32

func getSystemMillis() uint32 {
	return atomic.LoadUint32(&systemMillisValue)
}

func setSystemMillis(ms uint32) {
	atomic.StoreUint32(&systemMillisValue, ms)
}

// UpdateSystemMillis is called by target code once per main-loop tick to
// publish the latest hardware-timer-derived millisecond value.
func UpdateSystemMillis(ms uint32) {
	setSystemMillis(ms)
}
