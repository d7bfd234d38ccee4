//go:build tinygo

package main

import (
	"machine"
	"time"

	"statusconsole/config"
	"statusconsole/core"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.DumpTimingRing()
			panic(r)
		}
	}()

	cfg := config.Default()

	gpioDriver := NewRPGPIODriver()
	core.SetGPIODriver(gpioDriver)

	display, err := NewRPDisplayDriver()
	if err != nil {
		panic(err)
	}
	core.SetDisplayDriver(display)

	transport, err := NewRPSerialDriver()
	if err != nil {
		panic(err)
	}
	core.SetTransportDriver(transport)

	core.SetDebugWriter(func(s string) { WriteDebugLine(transport, s) })
	core.InitAsyncDebug()
	core.SetDebugEnabled(true)
	core.DebugPrintln("debug output online")

	eng := core.NewEngine(core.EnginePins{
		Button: core.GPIOPin(cfg.Pins.Button),
		Green:  core.GPIOPin(cfg.Pins.LEDGreen),
		Red:    core.GPIOPin(cfg.Pins.LEDRed),
	})
	eng.Watch.Link.HeartbeatIntervalMs = cfg.Heartbeat.IntervalMs
	eng.Watch.Link.FrameTimeoutMs = cfg.Heartbeat.FrameTimeoutMs
	eng.Button.DebounceMs = cfg.Button.DebounceMs
	eng.Button.LongPressMs = cfg.Button.LongPressMs
	eng.Button.DoublePressGap = cfg.Button.DoublePressGapMs

	pinA, pinB := machine.Pin(cfg.Pins.EncoderA), machine.Pin(cfg.Pins.EncoderB)
	if err := wireEncoderInterrupts(eng, pinA, pinB); err != nil {
		panic(err)
	}

	eng.Boot()

	for {
		UpdateSystemTime()
		eng.Tick(core.SystemClock{}.NowMS())
		time.Sleep(core.TickIntervalMs * time.Millisecond)
	}
}
