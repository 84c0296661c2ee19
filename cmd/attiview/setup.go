package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/attiview/internal/attitude"
	"github.com/san-kum/attiview/internal/config"
	"github.com/san-kum/attiview/internal/display"
	"github.com/san-kum/attiview/internal/storage"
	"github.com/san-kum/attiview/internal/wireframe"
)

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// Config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = modelName
	}
	if flags.Changed("source") {
		cfg.Source.Kind = sourceKind
	}
	if flags.Changed("session") {
		cfg.Source.Session = sessionID
	}
	if flags.Changed("loop") {
		cfg.Source.Loop = loop
	}
	if flags.Changed("projection") {
		cfg.Projection = projection
	}
	if flags.Changed("axis-mapping") {
		cfg.AxisMapping = mapping
	}
	if flags.Changed("width") {
		cfg.Viewport.Width = width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = height
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildProjector(cfg *config.Config) (*wireframe.Projector, error) {
	m, err := wireframe.Lookup(cfg.Model)
	if err != nil {
		return nil, err
	}
	mode, err := wireframe.ParseMode(cfg.Projection)
	if err != nil {
		return nil, err
	}
	am, err := wireframe.ParseAxisMapping(cfg.AxisMapping)
	if err != nil {
		return nil, err
	}
	return wireframe.NewProjector(m, cfg.Viewport.Width, cfg.Viewport.Height,
		wireframe.WithMode(mode),
		wireframe.WithAxisMapping(am),
	)
}

func buildSource(cfg *config.Config, st *storage.Store) (attitude.Source, error) {
	src := cfg.Source
	switch src.Kind {
	case "static":
		return attitude.Static{Sample: attitude.Sample{X: src.Accel[0], Y: src.Accel[1], Z: src.Accel[2]}}, nil
	case "replay":
		records, err := st.LoadSamples(src.Session)
		if err != nil {
			return nil, err
		}
		return attitude.NewReplay(storage.Samples(records), src.Loop)
	default:
		return attitude.NewSweep(attitude.SweepConfig{
			RollAmplitude:  src.RollAmplitude,
			PitchAmplitude: src.PitchAmplitude,
			Period:         time.Duration(src.PeriodMs) * time.Millisecond,
			Step:           cfg.Interval(),
			Noise:          src.Noise,
			Seed:           src.Seed,
		}), nil
	}
}

func lineStyle(cfg *config.Config) (display.Style, error) {
	rgb, err := config.ParseColor(cfg.Line.Color)
	if err != nil {
		return display.Style{}, err
	}
	return display.Style{
		Color:   display.RGB(rgb),
		Width:   cfg.Line.Width,
		OffsetX: cfg.Viewport.OffsetX,
		OffsetY: cfg.Viewport.OffsetY,
	}, nil
}

func sessionMetadata(cfg *config.Config) storage.SessionMetadata {
	return storage.SessionMetadata{
		Model:      cfg.Model,
		Preset:     preset,
		Width:      cfg.Viewport.Width,
		Height:     cfg.Viewport.Height,
		IntervalMs: cfg.IntervalMs,
		Source:     cfg.Source.Kind,
		Projection: cfg.Projection,
	}
}
