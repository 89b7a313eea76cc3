package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andareed/mini-text/bridge"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Strategy() != bridge.ExternalCapture {
		t.Errorf("strategy = %s", cfg.Strategy())
	}
	if cfg.Clipboard.Backend != "system" || cfg.Capture.Backend != "xdotool" {
		t.Errorf("backends = %q / %q", cfg.Clipboard.Backend, cfg.Capture.Backend)
	}
	if cfg.Timing.CopyFromWait != 3*time.Second {
		t.Errorf("copyfrom_wait = %s", cfg.Timing.CopyFromWait)
	}
	if cfg.Timing.KeyInputWait != 300*time.Millisecond {
		t.Errorf("key_input_wait = %s", cfg.Timing.KeyInputWait)
	}
	if cfg.Timing.CommandTimeout != 10*time.Second {
		t.Errorf("command_timeout = %s", cfg.Timing.CommandTimeout)
	}
	if cfg.Timing.WindowActivateWait != 300*time.Millisecond {
		t.Errorf("window_activate_wait = %s", cfg.Timing.WindowActivateWait)
	}
	if cfg.UI.SerializeActions {
		t.Error("serialize_actions should default to off")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
mode: clipboard
clipboard:
  backend: osc52
capture:
  backend: command
  command: ["screen-ocr", "--active"]
timing:
  copyfrom_wait: 5s
ui:
  serialize_actions: true
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Strategy() != bridge.ClipboardRead {
		t.Errorf("strategy = %s", cfg.Strategy())
	}
	if cfg.Clipboard.Backend != "osc52" {
		t.Errorf("clipboard backend = %q", cfg.Clipboard.Backend)
	}
	if strings.Join(cfg.Capture.Command, " ") != "screen-ocr --active" {
		t.Errorf("capture command = %q", cfg.Capture.Command)
	}
	if cfg.Timing.CopyFromWait != 5*time.Second {
		t.Errorf("copyfrom_wait = %s", cfg.Timing.CopyFromWait)
	}
	if cfg.Timing.KeyInputWait != 300*time.Millisecond {
		t.Errorf("unset key_input_wait should keep its default, got %s", cfg.Timing.KeyInputWait)
	}
	if !cfg.UI.SerializeActions {
		t.Error("serialize_actions not read")
	}
}

func TestTimingBareNumbersAreSeconds(t *testing.T) {
	path := writeConfig(t, `
timing:
  copyfrom_wait: 3
  key_input_wait: 0.3
  window_activate_wait: 0.5
  command_timeout: 2m
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"copyfrom_wait", cfg.Timing.CopyFromWait, 3 * time.Second},
		{"key_input_wait", cfg.Timing.KeyInputWait, 300 * time.Millisecond},
		{"window_activate_wait", cfg.Timing.WindowActivateWait, 500 * time.Millisecond},
		{"command_timeout", cfg.Timing.CommandTimeout, 2 * time.Minute},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestTimingEnvSeconds(t *testing.T) {
	t.Setenv("MINI_TEXT_TIMING_COPYFROM_WAIT", "1.5")

	cfg, err := LoadFromFile(writeConfig(t, "mode: external\n"))
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Timing.CopyFromWait != 1500*time.Millisecond {
		t.Errorf("copyfrom_wait = %s", cfg.Timing.CopyFromWait)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "mode: clipboard\n")
	t.Setenv("MINI_TEXT_MODE", "external")
	t.Setenv("MINI_TEXT_CLIPBOARD_BACKEND", "command")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Strategy() != bridge.ExternalCapture {
		t.Errorf("env did not override mode: %s", cfg.Mode)
	}
	if cfg.Clipboard.Backend != "command" {
		t.Errorf("clipboard backend = %q", cfg.Clipboard.Backend)
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "external" {
		t.Errorf("mode = %q", cfg.Mode)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestValidation(t *testing.T) {
	tests := map[string]string{
		"bad mode":         "mode: ocr\n",
		"bad clipboard":    "clipboard:\n  backend: pigeon\n",
		"bad capture":      "capture:\n  backend: telepathy\n",
		"command no argv":  "capture:\n  backend: command\n",
		"negative wait":    "timing:\n  copyfrom_wait: -1s\n",
		"negative seconds": "timing:\n  key_input_wait: -0.5\n",
		"zero cmd timeout": "timing:\n  command_timeout: 0s\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFromFile(writeConfig(t, body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
