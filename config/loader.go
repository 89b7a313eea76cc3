package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/mini-text/bridge"
	"github.com/andareed/mini-text/clipboard"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigDir is the default directory for config files
	DefaultConfigDir = ".config/mini-text"
	// DefaultConfigName is the default config file name (without extension)
	DefaultConfigName = "config"
	// EnvPrefix is prepended to environment overrides, e.g. MINI_TEXT_MODE
	EnvPrefix = "MINI_TEXT"
)

// Load loads configuration from file, environment variables, and defaults
// Configuration precedence (highest to lowest):
// 1. Environment variables (prefixed with MINI_TEXT_)
// 2. Config file (~/.config/mini-text/config.yaml)
// 3. Default values
func Load() (*Config, error) {
	v := newViper()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir, DefaultConfigDir))

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return decode(v)
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// defaults are static; failing here is a programming error
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "external")
	v.SetDefault("clipboard.backend", clipboard.DefaultBackend)
	v.SetDefault("capture.backend", "xdotool")
	v.SetDefault("capture.command", []string{})

	v.SetDefault("timing.copyfrom_wait", "3s")
	v.SetDefault("timing.key_input_wait", "300ms")
	v.SetDefault("timing.window_activate_wait", "300ms")
	v.SetDefault("timing.command_timeout", "10s")

	v.SetDefault("ui.serialize_actions", false)
	v.SetDefault("ui.width", 80)
	v.SetDefault("ui.height", 12)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		secondsToDurationHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// secondsToDurationHook reads bare numbers ("3", 0.3) as seconds, the unit
// older mini-text configs use. Strings with a unit fall through to
// StringToTimeDurationHookFunc.
func secondsToDurationHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}

	var secs float64
	switch v := data.(type) {
	case int:
		secs = float64(v)
	case int64:
		secs = float64(v)
	case uint64:
		secs = float64(v)
	case float32:
		secs = float64(v)
	case float64:
		secs = v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return data, nil
		}
		secs = f
	default:
		return data, nil
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// Validate checks the configuration. Call it again after applying flag
// overrides.
func (cfg *Config) Validate() error {
	if _, err := bridge.ParseCaptureStrategy(cfg.Mode); err != nil {
		return err
	}
	if !clipboard.IsRegistered(cfg.Clipboard.Backend) {
		return fmt.Errorf("unknown clipboard backend %q (want one of %s)",
			cfg.Clipboard.Backend, strings.Join(clipboard.Names(), ", "))
	}

	switch cfg.Capture.Backend {
	case "xdotool":
	case "command":
		if len(cfg.Capture.Command) == 0 {
			return fmt.Errorf("capture backend 'command' requires capture.command")
		}
	default:
		return fmt.Errorf("unknown capture backend %q (want xdotool or command)", cfg.Capture.Backend)
	}

	if cfg.Timing.CopyFromWait < 0 || cfg.Timing.KeyInputWait < 0 || cfg.Timing.WindowActivateWait < 0 {
		return fmt.Errorf("timing values must not be negative")
	}
	if cfg.Timing.CommandTimeout <= 0 {
		return fmt.Errorf("timing.command_timeout must be positive")
	}
	return nil
}

// Strategy returns the capture strategy named by Mode.
func (cfg *Config) Strategy() bridge.CaptureStrategy {
	s, _ := bridge.ParseCaptureStrategy(cfg.Mode)
	return s
}
