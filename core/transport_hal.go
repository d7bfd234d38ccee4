package core

// TransportDriver is the abstract non-blocking serial transport core
// code uses: byte-wise read/write plus an is-readable check. The loop
// never blocks on it: Available reports whether a byte is ready before
// ReadByte is called.
type TransportDriver interface {
	Available() bool
	ReadByte() (byte, error)
	Write(b []byte) (int, error)
}

var transportDriver TransportDriver

// SetTransportDriver is called by target-specific code to register its driver.
func SetTransportDriver(d TransportDriver) {
	transportDriver = d
}

// MustTransport returns the configured driver or panics if missing.
func MustTransport() TransportDriver {
	if transportDriver == nil {
		panic("transport driver not configured")
	}
	return transportDriver
}

// WriteLine writes s followed by '\n' to the transport. Every outbound
// message is newline-terminated.
func WriteLine(drv TransportDriver, s string) error {
	if _, err := drv.Write([]byte(s)); err != nil {
		return err
	}
	_, err := drv.Write([]byte{'\n'})
	return err
}
