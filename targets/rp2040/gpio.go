//go:build tinygo

package main

import (
	"machine"

	"statusconsole/core"
)

// RPGPIODriver implements core.GPIODriver against the RP2040's GPIO
// pins via TinyGo's machine package.
type RPGPIODriver struct {
	configured map[core.GPIOPin]machine.Pin
}

// NewRPGPIODriver creates an RP2040 GPIO driver with no pins configured.
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{configured: make(map[core.GPIOPin]machine.Pin)}
}

func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	p := d.machinePin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configured[pin] = p
	return nil
}

func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	p := d.machinePin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.configured[pin] = p
	return nil
}

func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	p, ok := d.configured[pin]
	if !ok {
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		p = d.configured[pin]
	}
	p.Set(value)
	return nil
}

func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	p, ok := d.configured[pin]
	if !ok {
		return false, nil
	}
	return p.Get(), nil
}

func (d *RPGPIODriver) ReadPin(pin core.GPIOPin) bool {
	v, _ := d.GetPin(pin)
	return v
}

// machinePin maps a GPIOPin to the corresponding RP2040 machine.Pin.
// GPIO numbers are direct: GPIOPin(2) is GPIO2.
func (d *RPGPIODriver) machinePin(pin core.GPIOPin) machine.Pin {
	return machine.Pin(pin)
}
