// Package device is the host-side counterpart of the status console
// firmware: it owns the serial connection, sends framed telemetry /
// metadata / command-list frames, and reports the single-line
// REQ COMMANDS and SELECT messages the device emits in return.
package device

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"time"

	"statusconsole/host/serial"
)

// LineHandler is called once per line the device sends back
// (e.g. "REQ COMMANDS", "SELECT 9"), on a background goroutine.
type LineHandler func(line string)

// Device represents a host-side connection to the status console.
type Device struct {
	port serial.Port

	mu        sync.Mutex
	connected bool

	onLine LineHandler
	done   chan struct{}
}

// New creates a Device instance (not yet connected).
func New() *Device {
	return &Device{}
}

// Connect opens the serial port at the default baud rate and starts
// the background line reader.
func (d *Device) Connect(dev string) error {
	return d.ConnectWithConfig(serial.DefaultConfig(dev))
}

// ConnectWithConfig connects using a custom serial configuration.
func (d *Device) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	d.mu.Lock()
	d.port = port
	d.connected = true
	d.done = make(chan struct{})
	d.mu.Unlock()

	// Give the device time to finish booting if it just powered on.
	time.Sleep(100 * time.Millisecond)

	go d.readLoop()
	return nil
}

// OnLine registers the callback invoked for each line the device
// sends. Must be called before Connect to avoid missing early lines.
func (d *Device) OnLine(handler LineHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onLine = handler
}

// Close stops the background reader and closes the serial port.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.connected {
		return nil
	}
	d.connected = false
	close(d.done)
	return d.port.Close()
}

func (d *Device) readLoop() {
	scanner := bufio.NewScanner(d.port)
	for scanner.Scan() {
		select {
		case <-d.done:
			return
		default:
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		d.mu.Lock()
		handler := d.onLine
		d.mu.Unlock()
		if handler != nil {
			handler(line)
		}
	}
}

// SendTelemetry sends a telemetry frame: the given lines, each
// verbatim, terminated by a blank line.
func (d *Device) SendTelemetry(lines []string) error {
	return d.sendFrame(lines)
}

// SendMeta sends a META frame with the given key=value fields.
func (d *Device) SendMeta(fields map[string]string) error {
	var b strings.Builder
	b.WriteString("META")
	for k, v := range fields {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return d.sendFrame([]string{b.String()})
}

// SendMetaInterval is a convenience wrapper for the one META field the
// device recognizes: the heartbeat interval in seconds.
func (d *Device) SendMetaInterval(seconds float64) error {
	return d.SendMeta(map[string]string{"interval": fmt.Sprintf("%g", seconds)})
}

// Command is a single host-advertised menu entry.
type Command struct {
	ID    string
	Label string
}

// SendCommands sends a COMMANDS v1 frame listing the given commands.
func (d *Device) SendCommands(commands []Command) error {
	lines := make([]string, 0, len(commands)+1)
	lines = append(lines, "COMMANDS v1")
	for _, c := range commands {
		lines = append(lines, c.ID+" "+c.Label)
	}
	return d.sendFrame(lines)
}

func (d *Device) sendFrame(lines []string) error {
	d.mu.Lock()
	port := d.port
	connected := d.connected
	d.mu.Unlock()

	if !connected {
		return fmt.Errorf("device not connected")
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := port.Write([]byte(b.String()))
	return err
}
