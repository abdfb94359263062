package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StyleList supports either:
//
//	style: default_no_resize
//
// or:
//
//	style:
//	  - close_button
//	  - resizable
type StyleList []string

func (l *StyleList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("style must be a string or list of strings")
		}
		*l = StyleList{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make(StyleList, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("style entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("style must be a string or list of strings")
	}
}

// RawConfig mirrors the file. Nil fields were not set and keep their
// defaults.
type RawConfig struct {
	Display    *string          `yaml:"display"`
	XAuthority *string          `yaml:"xauthority"`
	DPI        *float64         `yaml:"dpi"`
	LogLevel   *string          `yaml:"log_level"`
	Window     *RawWindowConfig `yaml:"window"`
}

type RawWindowConfig struct {
	Title     *string    `yaml:"title"`
	Width     *float64   `yaml:"width"`
	Height    *float64   `yaml:"height"`
	MinWidth  *float64   `yaml:"min_width"`
	MinHeight *float64   `yaml:"min_height"`
	MaxWidth  *float64   `yaml:"max_width"`
	MaxHeight *float64   `yaml:"max_height"`
	PositionX *float64   `yaml:"position_x"`
	PositionY *float64   `yaml:"position_y"`
	Style     *StyleList `yaml:"style"`
	State     *string    `yaml:"state"`
}

// BuildEffectiveConfig applies raw on top of DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	set(&cfg.Display, raw.Display)
	set(&cfg.XAuthority, raw.XAuthority)
	set(&cfg.DPI, raw.DPI)
	set(&cfg.LogLevel, raw.LogLevel)

	if w := raw.Window; w != nil {
		set(&cfg.Window.Title, w.Title)
		set(&cfg.Window.Width, w.Width)
		set(&cfg.Window.Height, w.Height)
		set(&cfg.Window.MinWidth, w.MinWidth)
		set(&cfg.Window.MinHeight, w.MinHeight)
		set(&cfg.Window.MaxWidth, w.MaxWidth)
		set(&cfg.Window.MaxHeight, w.MaxHeight)
		set(&cfg.Window.PositionX, w.PositionX)
		set(&cfg.Window.PositionY, w.PositionY)
		set(&cfg.Window.Style, w.Style)
		set(&cfg.Window.State, w.State)
	}
	return cfg
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
