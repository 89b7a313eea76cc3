package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Mode      string          `mapstructure:"mode"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Capture   CaptureConfig   `mapstructure:"capture"`
	Timing    TimingConfig    `mapstructure:"timing"`
	UI        UIConfig        `mapstructure:"ui"`
}

// ClipboardConfig selects the clipboard backend
type ClipboardConfig struct {
	Backend string `mapstructure:"backend"`
}

// CaptureConfig selects how the active window is captured
type CaptureConfig struct {
	Backend string   `mapstructure:"backend"`
	Command []string `mapstructure:"command"`
}

// TimingConfig holds the waits around window capture and delivery.
// Bare numbers are seconds.
type TimingConfig struct {
	CopyFromWait       time.Duration `mapstructure:"copyfrom_wait"`
	KeyInputWait       time.Duration `mapstructure:"key_input_wait"`
	WindowActivateWait time.Duration `mapstructure:"window_activate_wait"`
	CommandTimeout     time.Duration `mapstructure:"command_timeout"`
}

// UIConfig holds terminal panel options
type UIConfig struct {
	SerializeActions bool `mapstructure:"serialize_actions"`
	Width            int  `mapstructure:"width"`
	Height           int  `mapstructure:"height"`
}
