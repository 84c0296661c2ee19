package main

import (
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/attiview/internal/attitude"
	"github.com/san-kum/attiview/internal/config"
	"github.com/san-kum/attiview/internal/storage"
	"github.com/san-kum/attiview/internal/wireframe"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	configFile, preset = "", ""
	cmd := &cobra.Command{Use: "test"}
	indicatorFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(newTestCommand(t))
	if err != nil {
		t.Fatal(err)
	}
	want := config.DefaultConfig()
	if cfg.Model != want.Model || cfg.Viewport != want.Viewport || cfg.IntervalMs != want.IntervalMs {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestResolveConfigPresetThenFlags(t *testing.T) {
	cfg, err := resolveConfig(newTestCommand(t, "--preset", "detail", "--width", "200"))
	if err != nil {
		t.Fatal(err)
	}
	detail := config.GetPreset("detail")
	if cfg.Viewport.Width != 200 {
		t.Errorf("flag should override preset width, got %d", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != detail.Viewport.Height {
		t.Errorf("unset flag should keep preset height %d, got %d", detail.Viewport.Height, cfg.Viewport.Height)
	}
	if cfg.Line.Width != detail.Line.Width {
		t.Errorf("expected preset line width %d, got %d", detail.Line.Width, cfg.Line.Width)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	if _, err := resolveConfig(newTestCommand(t, "--preset", "nope")); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := resolveConfig(newTestCommand(t, "--interval", "-5")); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	// The viewport is checked by the projector, not the config.
	cfg, err := resolveConfig(newTestCommand(t, "--width", "0"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := buildProjector(cfg); !errors.Is(err, wireframe.ErrInvalidViewport) {
		t.Errorf("expected ErrInvalidViewport, got %v", err)
	}
}

func TestResolveConfigReplay(t *testing.T) {
	cfg, err := resolveConfig(newTestCommand(t, "--source", "replay", "--session", "ship_1700000000", "--loop=false"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source.Kind != "replay" || cfg.Source.Session != "ship_1700000000" || cfg.Source.Loop {
		t.Errorf("replay flags not applied: %+v", cfg.Source)
	}

	cfg, err = resolveConfig(newTestCommand(t, "--source", "replay", "--session", "ship_1700000000"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Source.Loop {
		t.Error("replay should loop unless --loop=false is given")
	}

	if _, err := resolveConfig(newTestCommand(t, "--source", "replay")); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig without a session, got %v", err)
	}
}

func TestBuildProjector(t *testing.T) {
	cfg, err := resolveConfig(newTestCommand(t, "--model", "cube", "--projection", "affine"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := buildProjector(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.Model().Name() != "cube" || p.Mode().String() != "affine" {
		t.Errorf("got model %s mode %s", p.Model().Name(), p.Mode())
	}

	cfg.Model = "blimp"
	if _, err := buildProjector(cfg); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestBuildSource(t *testing.T) {
	st := storage.New(t.TempDir())

	cfg := config.DefaultConfig()
	cfg.Source.Kind = "static"
	cfg.Source.Accel = [3]float64{0, 0, 1}
	src, err := buildSource(cfg, st)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := src.Read()
	if s != (attitude.Sample{X: 0, Y: 0, Z: 1}) {
		t.Errorf("static source read %+v", s)
	}

	cfg.Source.Kind = "sweep"
	if _, err := buildSource(cfg, st); err != nil {
		t.Fatal(err)
	}

	records := []storage.Record{
		{TMs: 0, Sample: attitude.Sample{Z: 1}},
		{TMs: 100, Sample: attitude.Sample{Y: 1}},
	}
	id, err := st.Save(storage.SessionMetadata{Model: "ship"}, records)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Source.Kind = "replay"
	cfg.Source.Session = id
	cfg.Source.Loop = false
	src, err = buildSource(cfg, st)
	if err != nil {
		t.Fatal(err)
	}
	for range records {
		if _, err := src.Read(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := src.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF after replay, got %v", err)
	}
}

func TestLineStyle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Line.Color = "#FF8000"
	cfg.Line.Width = 2
	style, err := lineStyle(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if style.Color.R != 0xFF || style.Color.G != 0x80 || style.Color.B != 0 || style.Width != 2 {
		t.Errorf("unexpected style %+v", style)
	}
	if style.OffsetX != cfg.Viewport.OffsetX || style.OffsetY != cfg.Viewport.OffsetY {
		t.Errorf("offset not carried from viewport: %+v", style)
	}

	cfg.Line.Color = "green"
	if _, err := lineStyle(cfg); err == nil {
		t.Error("expected error for bad color")
	}
}
