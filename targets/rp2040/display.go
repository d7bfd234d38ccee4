//go:build tinygo

package main

import (
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"
)

// lcdI2CAddress is the PCF8574 backpack's default address.
const lcdI2CAddress = 0x27

// RPDisplayDriver implements core.DisplayDriver over a 20x4 character
// LCD attached through an I2C backpack.
type RPDisplayDriver struct {
	dev hd44780i2c.Device
}

// NewRPDisplayDriver configures I2C0 and the attached LCD for 20
// columns by 4 rows.
func NewRPDisplayDriver() (*RPDisplayDriver, error) {
	if err := machine.I2C0.Configure(machine.I2CConfig{Frequency: machine.TWI_FREQ_400KHZ}); err != nil {
		return nil, err
	}

	dev := hd44780i2c.New(machine.I2C0, lcdI2CAddress)
	if err := dev.Configure(hd44780i2c.Config{Width: 20, Height: 4}); err != nil {
		return nil, err
	}

	d := &RPDisplayDriver{dev: dev}
	d.Clear()
	return d, nil
}

func (d *RPDisplayDriver) Clear() {
	d.dev.ClearDisplay()
}

func (d *RPDisplayDriver) SetCursor(col, row int) {
	d.dev.SetCursor(uint8(col), uint8(row))
}

func (d *RPDisplayDriver) Print(b []byte) {
	d.dev.Print(b)
}
