//go:build tinygo

package main

import (
	"machine"
)

// RPSerialDriver implements core.TransportDriver over machine.Serial,
// which TinyGo exposes as USB CDC-ACM on the RP2040.
type RPSerialDriver struct{}

// NewRPSerialDriver configures USB CDC serial.
func NewRPSerialDriver() (*RPSerialDriver, error) {
	if err := machine.Serial.Configure(machine.UARTConfig{}); err != nil {
		return nil, err
	}
	return &RPSerialDriver{}, nil
}

func (d *RPSerialDriver) Available() bool {
	return machine.Serial.Buffered() > 0
}

func (d *RPSerialDriver) ReadByte() (byte, error) {
	return machine.Serial.ReadByte()
}

func (d *RPSerialDriver) Write(b []byte) (int, error) {
	return machine.Serial.Write(b)
}

// WriteDebugLine writes a "# "-prefixed debug line to the transport.
// Debug lines share the outbound stream with the device's REQ COMMANDS
// and SELECT messages; the leading "# " keeps a debug line from ever
// starting with either of those prefixes, which is how the host side
// recognizes them.
func WriteDebugLine(d *RPSerialDriver, s string) {
	d.Write([]byte("# " + s + "\n"))
}
