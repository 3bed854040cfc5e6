// Package config loads the infinitelist CLI settings from file, environment
// and defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Config is the top-level configuration struct for infinitelist.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Render    RenderConfig    `mapstructure:"render"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Scenario  ScenarioConfig  `mapstructure:"scenario"`
}

// RenderConfig controls how list windows are printed.
type RenderConfig struct {
	WindowStart int    `mapstructure:"window_start"`
	WindowStop  int    `mapstructure:"window_stop"`
	Style       string `mapstructure:"style"`
	Color       bool   `mapstructure:"color"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

// ScenarioConfig holds scenario execution settings.
type ScenarioConfig struct {
	// Strict turns a failing step into an immediate error instead of a
	// recorded failure.
	Strict bool `mapstructure:"strict"`
}

// Render styles understood by the table renderer.
const (
	StyleDefault = "default"
	StyleLight   = "light"
	StyleRounded = "rounded"
	StyleBold    = "bold"
	StyleDouble  = "double"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MaxWindowWidth caps the number of indices a rendered window may span.
const MaxWindowWidth = 10_000

// sampleRatioMax is the upper bound for the trace sampling ratio.
const sampleRatioMax = 1.0

var (
	styles = []string{StyleDefault, StyleLight, StyleRounded, StyleBold, StyleDouble}

	levels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidWindow indicates window_start is not below window_stop.
	ErrInvalidWindow = errors.New("render.window_start must be less than render.window_stop")
	// ErrWindowTooWide indicates the window spans too many indices.
	ErrWindowTooWide = errors.New("render window is too wide")
	// ErrInvalidStyle indicates an unknown table style.
	ErrInvalidStyle = errors.New("render.style is not a known style")
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("logging.level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
	// ErrInvalidSampleRatio indicates the sampling ratio is out of range.
	ErrInvalidSampleRatio = errors.New("telemetry.sample_ratio must be between 0 and 1")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	renderErr := c.validateRender()
	if renderErr != nil {
		return renderErr
	}

	if _, ok := levels[c.Logging.Level]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if c.Logging.Format != FormatText && c.Logging.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > sampleRatioMax {
		return ErrInvalidSampleRatio
	}

	return nil
}

func (c *Config) validateRender() error {
	if c.Render.WindowStart >= c.Render.WindowStop {
		return ErrInvalidWindow
	}

	// Unsigned difference; the window is ordered so it cannot wrap.
	if uint(c.Render.WindowStop-c.Render.WindowStart) > MaxWindowWidth {
		return fmt.Errorf("%w: at most %d indices", ErrWindowTooWide, MaxWindowWidth)
	}

	if !slices.Contains(styles, c.Render.Style) {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, c.Render.Style)
	}

	return nil
}

// LogLevel returns the slog level for Logging.Level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	level, ok := levels[c.Logging.Level]
	if !ok {
		return slog.LevelInfo
	}

	return level
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		Render: RenderConfig{
			WindowStart: DefaultWindowStart,
			WindowStop:  DefaultWindowStop,
			Style:       DefaultStyle,
			Color:       DefaultColor,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Telemetry: TelemetryConfig{
			SampleRatio: DefaultSampleRatio,
		},
	}
}
