// Package config loads the device's YAML configuration: serial
// settings, pin assignments, and heartbeat/button tuning.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full on-disk device configuration.
type Config struct {
	Serial    SerialConfig    `yaml:"serial"`
	Pins      PinsConfig      `yaml:"pins"`
	Heartbeat HeartbeatConfig `yaml:"heartbeat"`
	Button    ButtonConfig    `yaml:"button"`
}

// SerialConfig describes the host-facing transport.
type SerialConfig struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
}

// PinsConfig names the GPIO pins wired to the encoder, button, and
// LEDs. Pin numbers are configuration, not baked into the firmware.
type PinsConfig struct {
	EncoderA uint32 `yaml:"encoder_a"`
	EncoderB uint32 `yaml:"encoder_b"`
	Button   uint32 `yaml:"button"`
	LEDGreen uint32 `yaml:"led_green"`
	LEDRed   uint32 `yaml:"led_red"`
}

// HeartbeatConfig seeds the link watchdog's defaults; a META frame may
// later override these at runtime.
type HeartbeatConfig struct {
	IntervalMs     uint32 `yaml:"interval_ms"`
	FrameTimeoutMs uint32 `yaml:"frame_timeout_ms"`
}

// ButtonConfig seeds the input classifier's timing parameters.
type ButtonConfig struct {
	DebounceMs       uint32 `yaml:"debounce_ms"`
	LongPressMs      uint32 `yaml:"long_press_ms"`
	DoublePressGapMs uint32 `yaml:"double_press_gap_ms"`
}

// Load reads and parses the YAML configuration at path, filling in any
// missing field with its documented default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses YAML configuration bytes and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in missing configuration values with the
// firmware's documented defaults.
func applyDefaults(cfg *Config) {
	if cfg.Serial.BaudRate == 0 {
		cfg.Serial.BaudRate = DefaultBaudRate
	}

	if cfg.Heartbeat.IntervalMs == 0 {
		cfg.Heartbeat.IntervalMs = DefaultHeartbeatIntervalMs
	}
	if cfg.Heartbeat.FrameTimeoutMs == 0 {
		cfg.Heartbeat.FrameTimeoutMs = DefaultFrameTimeoutMs
	}

	if cfg.Button.DebounceMs == 0 {
		cfg.Button.DebounceMs = DefaultButtonDebounceMs
	}
	if cfg.Button.LongPressMs == 0 {
		cfg.Button.LongPressMs = DefaultButtonLongPressMs
	}
	if cfg.Button.DoublePressGapMs == 0 {
		cfg.Button.DoublePressGapMs = DefaultButtonDoublePressGapMs
	}

	if cfg.Pins.EncoderA == 0 {
		cfg.Pins.EncoderA = DefaultPinEncoderA
	}
	if cfg.Pins.EncoderB == 0 {
		cfg.Pins.EncoderB = DefaultPinEncoderB
	}
	if cfg.Pins.Button == 0 {
		cfg.Pins.Button = DefaultPinButton
	}
	if cfg.Pins.LEDGreen == 0 {
		cfg.Pins.LEDGreen = DefaultPinLEDGreen
	}
	if cfg.Pins.LEDRed == 0 {
		cfg.Pins.LEDRed = DefaultPinLEDRed
	}
}

// Defaults matching the firmware's own fallback values.
const (
	DefaultBaudRate = 115200

	DefaultHeartbeatIntervalMs = 3000
	DefaultFrameTimeoutMs      = 10000

	DefaultButtonDebounceMs       = 20
	DefaultButtonLongPressMs      = 700
	DefaultButtonDoublePressGapMs = 350

	// Pin defaults match the board wiring in targets/rp2040.
	DefaultPinEncoderA = 2
	DefaultPinEncoderB = 3
	DefaultPinButton   = 4
	DefaultPinLEDGreen = 5
	DefaultPinLEDRed   = 6
)

// Default returns a Config populated entirely with defaults and no
// device path, useful for tests and for the host-side demo tool.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
