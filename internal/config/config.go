package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel      = "ship"
	DefaultWidth      = 170
	DefaultHeight     = 96
	DefaultOffsetX    = 5
	DefaultOffsetY    = 16
	DefaultColor      = "#3AD86D"
	DefaultLineWidth  = 2
	DefaultIntervalMs = 100
	DefaultSource     = "sweep"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Model       string         `yaml:"model"`
	Projection  string         `yaml:"projection"`
	AxisMapping string         `yaml:"axis_mapping"`
	IntervalMs  int            `yaml:"interval_ms"`
	Viewport    ViewportConfig `yaml:"viewport"`
	Line        LineConfig     `yaml:"line"`
	Source      SourceConfig   `yaml:"source"`
}

// ViewportConfig is the pixel area the model is fitted to and where the
// host panel places it.
type ViewportConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetX int `yaml:"x"`
	OffsetY int `yaml:"y"`
}

type LineConfig struct {
	Color string `yaml:"color"`
	Width int    `yaml:"width"`
}

type SourceConfig struct {
	Kind           string     `yaml:"kind"` // sweep, static, replay
	RollAmplitude  float64    `yaml:"roll_amplitude"`
	PitchAmplitude float64    `yaml:"pitch_amplitude"`
	PeriodMs       int        `yaml:"period_ms"`
	Noise          float64    `yaml:"noise"`
	Seed           int64      `yaml:"seed"`
	Accel          [3]float64 `yaml:"accel"`
	Session        string     `yaml:"session"`
	Loop           bool       `yaml:"loop"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Projection:  "perspective",
		AxisMapping: "model_frame",
		IntervalMs:  DefaultIntervalMs,
		Viewport: ViewportConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			OffsetX: DefaultOffsetX,
			OffsetY: DefaultOffsetY,
		},
		Line: LineConfig{
			Color: DefaultColor,
			Width: DefaultLineWidth,
		},
		Source: SourceConfig{
			Kind:           DefaultSource,
			RollAmplitude:  20,
			PitchAmplitude: 15,
			PeriodMs:       6000,
			Noise:          0.005,
			Seed:           1,
			Accel:          [3]float64{0, 0, 1},
			Loop:           true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the projector cannot check itself.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("%w: model is empty", ErrInvalidConfig)
	}
	if c.IntervalMs < 0 {
		return fmt.Errorf("%w: interval_ms must not be negative, got %d", ErrInvalidConfig, c.IntervalMs)
	}
	if c.Line.Width <= 0 {
		return fmt.Errorf("%w: line width must be positive, got %d", ErrInvalidConfig, c.Line.Width)
	}
	if _, err := ParseColor(c.Line.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Source.Kind {
	case "sweep", "static":
	case "replay":
		if c.Source.Session == "" {
			return fmt.Errorf("%w: replay source needs a session", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source kind %q", ErrInvalidConfig, c.Source.Kind)
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// ParseColor parses "#RRGGBB" or "0xRRGGBB" into a 24-bit RGB value.
func ParseColor(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(h) != 6 {
		return 0, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint32(v), nil
}
