package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/nativewin/internal/style"
)

// Config is the effective configuration after defaults and the file have
// been merged.
type Config struct {
	// Display overrides $DISPLAY for the X11 backend.
	Display string `yaml:"display"`
	// XAuthority overrides $XAUTHORITY for the X11 backend.
	XAuthority string `yaml:"xauthority"`
	// DPI overrides the system DPI when positive. 0 asks the OS.
	DPI      float64      `yaml:"dpi"`
	LogLevel string       `yaml:"log_level"`
	Window   WindowConfig `yaml:"window"`
}

// WindowConfig holds the defaults used for windows opened from config.
// Sizes are in density-independent pixels.
type WindowConfig struct {
	Title     string  `yaml:"title"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinWidth  float64 `yaml:"min_width,omitempty"`
	MinHeight float64 `yaml:"min_height,omitempty"`
	MaxWidth  float64 `yaml:"max_width,omitempty"`
	MaxHeight float64 `yaml:"max_height,omitempty"`
	// PositionX and PositionY place the window in the usable screen area,
	// 0 for the left/top edge and 1 for the right/bottom edge.
	PositionX float64   `yaml:"position_x"`
	PositionY float64   `yaml:"position_y"`
	Style     StyleList `yaml:"style"`
	State     string    `yaml:"state"`
}

// HasBounds reports whether any min/max size is configured.
func (w WindowConfig) HasBounds() bool {
	return w.MinWidth > 0 || w.MinHeight > 0 || w.MaxWidth > 0 || w.MaxHeight > 0
}

// Flags parses the style list.
func (w WindowConfig) Flags() (style.Flags, error) {
	return style.ParseFlags(w.Style)
}

// ParsedState parses the initial state.
func (w WindowConfig) ParsedState() (style.State, error) {
	return style.ParseState(w.State)
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "nativewin", "config.yaml"), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:     "nativewin",
			Width:     800,
			Height:    600,
			PositionX: 0.5,
			PositionY: 0.5,
			Style:     StyleList{"default"},
			State:     "restored",
		},
	}
}

// SlogLevel maps LogLevel to a slog level. Unknown values map to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warning", "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Marshal renders the effective configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if math.IsNaN(c.DPI) || c.DPI < 0 {
		return &ValidationError{Path: "dpi", Err: fmt.Errorf("dpi must be >= 0")}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warning", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}

	w := c.Window
	if !(w.Width > 0) {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be > 0")}
	}
	if !(w.Height > 0) {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be > 0")}
	}
	if !unitInterval(w.PositionX) {
		return &ValidationError{Path: "window.position_x", Err: fmt.Errorf("position_x must be between 0 and 1")}
	}
	if !unitInterval(w.PositionY) {
		return &ValidationError{Path: "window.position_y", Err: fmt.Errorf("position_y must be between 0 and 1")}
	}
	if _, err := w.Flags(); err != nil {
		return &ValidationError{Path: "window.style", Err: err}
	}
	if _, err := w.ParsedState(); err != nil {
		return &ValidationError{Path: "window.state", Err: err}
	}
	for path, v := range map[string]float64{
		"window.min_width":  w.MinWidth,
		"window.min_height": w.MinHeight,
		"window.max_width":  w.MaxWidth,
		"window.max_height": w.MaxHeight,
	} {
		if math.IsNaN(v) || v < 0 {
			return &ValidationError{Path: path, Err: fmt.Errorf("must be >= 0")}
		}
	}
	if w.MaxWidth > 0 && w.MinWidth > w.MaxWidth {
		return &ValidationError{Path: "window.min_width", Err: fmt.Errorf("min_width %g exceeds max_width %g", w.MinWidth, w.MaxWidth)}
	}
	if w.MaxHeight > 0 && w.MinHeight > w.MaxHeight {
		return &ValidationError{Path: "window.min_height", Err: fmt.Errorf("min_height %g exceeds max_height %g", w.MinHeight, w.MaxHeight)}
	}
	return nil
}

func unitInterval(f float64) bool {
	return f >= 0 && f <= 1
}

// ValidationError locates a validation failure in the effective config
// and, when known, in the file that set it.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
