package config

import "sort"

// Presets are the host layouts the indicator ships with. Each is a complete
// configuration; callers copy before modifying.
var Presets = map[string]*Config{
	// Launcher tile: 170x96 wireframe inside the 180x110 attitude card.
	"panel": {
		Model: "ship", Projection: "perspective", AxisMapping: "model_frame", IntervalMs: 100,
		Viewport: ViewportConfig{Width: 170, Height: 96, OffsetX: 5, OffsetY: 16},
		Line:     LineConfig{Color: "#3AD86D", Width: 2},
		Source:   SourceConfig{Kind: "sweep", RollAmplitude: 20, PitchAmplitude: 15, PeriodMs: 6000, Noise: 0.005, Seed: 1, Loop: true},
	},
	// Detail window opened from the tile.
	"detail": {
		Model: "ship", Projection: "perspective", AxisMapping: "model_frame", IntervalMs: 100,
		Viewport: ViewportConfig{Width: 360, Height: 220, OffsetX: 36, OffsetY: -10},
		Line:     LineConfig{Color: "#3AD86D", Width: 3},
		Source:   SourceConfig{Kind: "sweep", RollAmplitude: 35, PitchAmplitude: 25, PeriodMs: 8000, Noise: 0.005, Seed: 1, Loop: true},
	},
	// Constrained hardware: affine fallback, slower tick.
	"lowpower": {
		Model: "ship", Projection: "affine", AxisMapping: "model_frame", IntervalMs: 250,
		Viewport: ViewportConfig{Width: 170, Height: 96, OffsetX: 5, OffsetY: 16},
		Line:     LineConfig{Color: "#3AD86D", Width: 1},
		Source:   SourceConfig{Kind: "sweep", RollAmplitude: 20, PitchAmplitude: 15, PeriodMs: 6000, Seed: 1, Loop: true},
	},
	// Zero-g sample on every tick.
	"freefall": {
		Model: "ship", Projection: "perspective", AxisMapping: "model_frame", IntervalMs: 100,
		Viewport: ViewportConfig{Width: 170, Height: 96, OffsetX: 5, OffsetY: 16},
		Line:     LineConfig{Color: "#3AD86D", Width: 2},
		Source:   SourceConfig{Kind: "static", Accel: [3]float64{0, 0, 0}},
	},
	"cube": {
		Model: "cube", Projection: "perspective", AxisMapping: "model_frame", IntervalMs: 100,
		Viewport: ViewportConfig{Width: 120, Height: 120},
		Line:     LineConfig{Color: "#4FD88E", Width: 1},
		Source:   SourceConfig{Kind: "sweep", RollAmplitude: 45, PitchAmplitude: 45, PeriodMs: 5000, Seed: 1, Loop: true},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
