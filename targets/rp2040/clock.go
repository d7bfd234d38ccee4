//go:build tinygo

package main

import (
	"runtime/volatile"
	"unsafe"

	"statusconsole/core"
)

// RP2040 Timer peripheral memory map. The timer free-runs at 1MHz from
// boot, giving a 64-bit microsecond counter split across two 32-bit
// registers.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// GetHardwareUptime reads the full 64-bit microsecond timer, retrying
// if a rollover of the low word is caught mid-read.
func GetHardwareUptime() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}

// UpdateSystemTime publishes the hardware timer, converted to
// milliseconds, into the core's monotonic clock abstraction. Called
// once per main loop iteration, mirroring the tick-driven clock the
// firmware's plain-go build drives through core.SetSystemMillis in
// tests.
func UpdateSystemTime() {
	core.UpdateSystemMillis(uint32(GetHardwareUptime() / 1000))
}
