package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/attiview/internal/analysis"
	"github.com/san-kum/attiview/internal/config"
	"github.com/san-kum/attiview/internal/display"
	"github.com/san-kum/attiview/internal/export"
	"github.com/san-kum/attiview/internal/gui"
	"github.com/san-kum/attiview/internal/indicator"
	"github.com/san-kum/attiview/internal/storage"
	"github.com/san-kum/attiview/internal/viz"
	"github.com/san-kum/attiview/internal/wireframe"
)

// session bundles what every indicator-driving command builds.
type session struct {
	cfg      *config.Config
	store    *storage.Store
	proj     *wireframe.Projector
	style    display.Style
	recorder *indicator.Recorder
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	proj, err := buildProjector(cfg)
	if err != nil {
		return nil, err
	}
	style, err := lineStyle(cfg)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, store: storage.New(dataDir), proj: proj, style: style}
	if record {
		s.recorder = indicator.NewRecorder(0)
	}
	return s, nil
}

func (s *session) newIndicator(sink display.Sink, opts ...indicator.Option) (*indicator.Indicator, error) {
	src, err := buildSource(s.cfg, s.store)
	if err != nil {
		return nil, err
	}
	opts = append(opts, indicator.WithInterval(s.cfg.Interval()))
	if s.recorder != nil {
		opts = append(opts, indicator.WithObserver(s.recorder))
	}
	return indicator.New(src, s.proj, sink, opts...)
}

func (s *session) save() error {
	if s.recorder == nil {
		return nil
	}
	if err := s.store.Init(); err != nil {
		return err
	}
	id, err := s.store.Save(sessionMetadata(s.cfg), s.recorder.Records())
	if err != nil {
		return err
	}
	slog.Info("session saved", "id", id, "samples", s.recorder.Len())
	fmt.Printf("session id: %s\n", id)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	edges := s.proj.Model().EdgeCount()
	sink := viz.NewCanvasSink(edges, s.cfg.Viewport.Width, s.cfg.Viewport.Height)
	history := viz.NewHistory(viz.HistoryCapacity)

	ind, err := s.newIndicator(sink, indicator.WithObserver(history))
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(ind, sink, history, s.cfg.Model), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(viz.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return s.save()
}

func runGUI(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	win := gui.NewWindow(s.proj.Model().EdgeCount(), s.cfg.Viewport.Width, s.cfg.Viewport.Height, s.style, display.PanelOptions{})
	ind, err := s.newIndicator(win)
	if err != nil {
		return err
	}
	if err := gui.Run(ind, win, "attiview :: "+s.cfg.Model); err != nil {
		return err
	}
	return s.save()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	w, h := s.proj.Size()
	panel := display.NewPanel(s.proj.Model().EdgeCount(), w, h, s.style, display.PanelOptions{})
	ind, err := s.newIndicator(panel)
	if err != nil {
		return err
	}

	start := time.Now()
	if duration > 0 {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, time.Duration(duration*float64(time.Second)))
		defer cancelTimeout()
		if err := ind.Run(ctx); err != nil {
			return err
		}
	} else {
		n, err := ind.Step(ticks)
		if err != nil {
			return err
		}
		if n < ticks {
			fmt.Printf("source exhausted after %d ticks\n", n)
		}
	}
	elapsed := time.Since(start)

	last := ind.Last()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("ticks: %d\n", ind.Ticks())
	fmt.Printf("segments: %d\n", len(last.Segments))
	for _, line := range (display.Readout{Attitude: last.Attitude, Sample: last.Sample}).Lines() {
		fmt.Printf("  %s\n", line)
	}

	if pngOut != "" {
		if err := writePNG(pngOut, panel); err != nil {
			return err
		}
	}
	if svgOut != "" && ind.Ticks() > 0 {
		ro := display.Readout{Attitude: last.Attitude, Sample: last.Sample}
		if err := writeFrameSVG(svgOut, last.Segments, [2]int{w, h}, s.style, &ro); err != nil {
			return err
		}
	}
	return s.save()
}

func runFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	proj, err := buildProjector(cfg)
	if err != nil {
		return err
	}
	style, err := lineStyle(cfg)
	if err != nil {
		return err
	}

	segs := proj.Project(roll, pitch)
	w, h := proj.Size()

	sink := viz.NewCanvasSink(len(segs), w, h)
	if err := sink.Update(segs); err != nil {
		return err
	}
	fmt.Print(sink.Canvas().String())
	fmt.Printf("%s  roll %+.2f°  pitch %+.2f°  %d segments\n", cfg.Model, roll, pitch, len(segs))

	if pngOut != "" {
		panel := display.NewPanel(len(segs), w, h, style, display.PanelOptions{})
		if err := panel.Update(segs); err != nil {
			return err
		}
		if err := writePNG(pngOut, panel); err != nil {
			return err
		}
	}
	if svgOut != "" {
		if err := writeFrameSVG(svgOut, segs, [2]int{w, h}, style, nil); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, panel *display.Panel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := panel.WritePNG(f); err != nil {
		return err
	}
	fmt.Printf("png: %s\n", path)
	return nil
}

func writeFrameSVG(path string, segs []wireframe.Segment, viewport [2]int, style display.Style, ro *display.Readout) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.FrameSVG(f, segs, export.FrameOptions{Viewport: viewport, Style: style, Readout: ro}); err != nil {
		return err
	}
	fmt.Printf("svg: %s\n", path)
	return nil
}

func showFit(cmd *cobra.Command, args []string) error {
	m, err := wireframe.Lookup(modelName)
	if err != nil {
		return err
	}
	p, err := wireframe.NewProjector(m, width, height)
	if err != nil {
		return err
	}
	b, f := p.Bounds(), p.Fit()
	size := b.Size()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", m.Name())
	fmt.Fprintf(w, "vertices\t%d\n", m.VertexCount())
	fmt.Fprintf(w, "edges\t%d\n", m.EdgeCount())
	fmt.Fprintf(w, "x\t%.6f .. %.6f\n", b.MinX, b.MaxX)
	fmt.Fprintf(w, "y\t%.6f .. %.6f\n", b.MinY, b.MaxY)
	fmt.Fprintf(w, "z\t%.6f .. %.6f\n", b.MinZ, b.MaxZ)
	fmt.Fprintf(w, "size\t%.6f x %.6f x %.6f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "center\t(%.6f, %.6f, %.6f)\n", f.Center.X, f.Center.Y, f.Center.Z)
	fmt.Fprintf(w, "viewport\t%dx%d\n", width, height)
	fmt.Fprintf(w, "scale\t%.6f\n", f.Scale)
	fmt.Fprintf(w, "depth\t%.6f\n", f.Depth)
	fmt.Fprintf(w, "origin\t(%.1f, %.1f)\n", f.OriginX, f.OriginY)
	return w.Flush()
}

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERTICES\tEDGES")
	for _, name := range wireframe.ModelNames() {
		m := wireframe.MustLookup(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, m.VertexCount(), m.EdgeCount())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODEL\tVIEWPORT\tOFFSET\tLINE\tPROJECTION\tSOURCE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d,%d\t%s/%d\t%s\t%s\n",
			name,
			p.Model,
			p.Viewport.Width, p.Viewport.Height,
			p.Viewport.OffsetX, p.Viewport.OffsetY,
			p.Line.Color, p.Line.Width,
			p.Projection,
			p.Source.Kind,
		)
	}
	return w.Flush()
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tSAMPLES\tINTERVAL\tSOURCE")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%dms\t%s\n",
			s.ID,
			s.Model,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.SampleCount,
			s.IntervalMs,
			s.Source,
		)
	}
	return w.Flush()
}

func loadSession(id string) (*storage.SessionMetadata, []storage.Record, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return nil, nil, err
	}
	records, err := st.LoadSamples(id)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("session %s has no samples", id)
	}
	return meta, records, nil
}

func plotSession(cmd *cobra.Command, args []string) error {
	meta, records, err := loadSession(args[0])
	if err != nil {
		return err
	}
	rollSeries, pitchSeries := storage.Series(records)

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(records))

	chart := viz.PlotAttitude(rollSeries, pitchSeries, 80, 12, "roll (cyan) / pitch (gold), degrees")
	if chart == "" {
		return fmt.Errorf("not enough samples to plot")
	}
	fmt.Println(chart)

	if svgOut != "" {
		f, err := os.Create(svgOut)
		if err != nil {
			return err
		}
		defer f.Close()
		err = export.HistorySVG(f, 800, 240,
			export.Series{Name: "roll", Color: "#4fd8c4", Values: rollSeries},
			export.Series{Name: "pitch", Color: "#d8c94f", Values: pitchSeries},
		)
		if err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgOut)
	}
	return nil
}

func analyzeSession(cmd *cobra.Command, args []string) error {
	meta, records, err := loadSession(args[0])
	if err != nil {
		return err
	}
	rollSeries, pitchSeries := storage.Series(records)

	rate := 10.0
	if meta.IntervalMs > 0 {
		rate = 1000 / float64(meta.IntervalMs)
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("sample rate: %.2f hz\n\n", rate)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tMIN\tMAX\tMEAN\tRMS\tPEAK HZ\tPERIOD")
	for _, series := range []struct {
		name   string
		values []float64
	}{{"roll", rollSeries}, {"pitch", pitchSeries}} {
		st := analysis.Summarize(series.values)
		peak, err := analysis.DominantFrequency(series.values, rate)
		period := "-"
		peakHz := "-"
		if err == nil && peak.Freq > 0 {
			peakHz = fmt.Sprintf("%.3f", peak.Freq)
			period = fmt.Sprintf("%.2fs", 1/peak.Freq)
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\n",
			series.name, st.Min, st.Max, st.Mean, st.RMS, peakHz, period)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	bins, err := analysis.Spectrum(rollSeries, rate)
	if errors.Is(err, analysis.ErrTooShort) {
		return nil
	}
	if err != nil {
		return err
	}
	mags := make([]float64, len(bins))
	for i, b := range bins {
		mags[i] = b.Magnitude
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(mags,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("roll magnitude spectrum, 0 .. %.2f hz", rate/2)),
	))
	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	records, err := storage.New(dataDir).LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"t_ms", "accel_x", "accel_y", "accel_z", "roll_deg", "pitch_deg", "accel_norm"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatUint(r.TMs, 10),
			strconv.FormatFloat(r.Sample.X, 'f', 6, 64),
			strconv.FormatFloat(r.Sample.Y, 'f', 6, 64),
			strconv.FormatFloat(r.Sample.Z, 'f', 6, 64),
			strconv.FormatFloat(r.Attitude.RollDeg, 'f', 6, 64),
			strconv.FormatFloat(r.Attitude.PitchDeg, 'f', 6, 64),
			strconv.FormatFloat(r.Sample.Magnitude(), 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
