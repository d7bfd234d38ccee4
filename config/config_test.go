package config

import "testing"

func TestParseAppliesDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte(`
serial:
  device: /dev/ttyACM0
pins:
  encoder_a: 2
  encoder_b: 3
  button: 4
  led_green: 5
  led_red: 6
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Serial.BaudRate != DefaultBaudRate {
		t.Fatalf("expected default baud rate %d, got %d", DefaultBaudRate, cfg.Serial.BaudRate)
	}
	if cfg.Heartbeat.IntervalMs != DefaultHeartbeatIntervalMs {
		t.Fatalf("expected default heartbeat interval, got %d", cfg.Heartbeat.IntervalMs)
	}
	if cfg.Button.LongPressMs != DefaultButtonLongPressMs {
		t.Fatalf("expected default long-press threshold, got %d", cfg.Button.LongPressMs)
	}
	if cfg.Pins.Button != 4 {
		t.Fatalf("expected configured button pin preserved, got %d", cfg.Pins.Button)
	}
}

func TestParseKeepsExplicitValues(t *testing.T) {
	cfg, err := Parse([]byte(`
serial:
  device: /dev/ttyUSB0
  baud_rate: 9600
heartbeat:
  interval_ms: 1000
  frame_timeout_ms: 5000
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Serial.BaudRate != 9600 {
		t.Fatalf("expected explicit baud rate preserved, got %d", cfg.Serial.BaudRate)
	}
	if cfg.Heartbeat.FrameTimeoutMs != 5000 {
		t.Fatalf("expected explicit frame timeout preserved, got %d", cfg.Heartbeat.FrameTimeoutMs)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("not: [valid: yaml")); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}

func TestDefaultReturnsFullyPopulatedConfig(t *testing.T) {
	cfg := Default()
	if cfg.Serial.BaudRate != DefaultBaudRate {
		t.Fatalf("expected default baud rate, got %d", cfg.Serial.BaudRate)
	}
	if cfg.Pins.EncoderA != DefaultPinEncoderA || cfg.Pins.Button != DefaultPinButton {
		t.Fatalf("expected default pin assignments, got %+v", cfg.Pins)
	}
}

func TestParseAppliesPinDefaultsWhenOmitted(t *testing.T) {
	cfg, err := Parse([]byte(`
serial:
  device: /dev/ttyACM0
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pins.EncoderA != DefaultPinEncoderA || cfg.Pins.EncoderB != DefaultPinEncoderB ||
		cfg.Pins.Button != DefaultPinButton || cfg.Pins.LEDGreen != DefaultPinLEDGreen || cfg.Pins.LEDRed != DefaultPinLEDRed {
		t.Fatalf("expected default pins when omitted, got %+v", cfg.Pins)
	}
}
