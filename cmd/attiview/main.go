package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string
	modelName  string
	sourceKind string
	sessionID  string
	loop       bool
	projection string
	mapping    string
	width      int
	height     int
	intervalMs int
	record     bool
	// run
	ticks    int
	duration float64
	pngOut   string
	svgOut   string
	// frame
	roll  float64
	pitch float64
)

// main registers the attiview commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "attiview",
		Short:         "accelerometer attitude wireframe indicator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".attiview", "session directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "live terminal indicator",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	indicatorFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "detail window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	indicatorFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "drive the indicator headless for a number of ticks",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	indicatorFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", 100, "accepted ticks to run on a simulated clock")
	runCmd.Flags().Float64Var(&duration, "duration", 0, "run in real time for this many seconds instead of --ticks")
	runCmd.Flags().StringVar(&pngOut, "png", "", "write the last frame as PNG")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the last frame as SVG")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "project a single attitude",
		Args:  cobra.NoArgs,
		RunE:  runFrame,
	}
	frameCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	frameCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	frameCmd.Flags().StringVar(&modelName, "model", "ship", "wireframe model")
	frameCmd.Flags().StringVar(&projection, "projection", "perspective", "projection mode (perspective, affine)")
	frameCmd.Flags().StringVar(&mapping, "axis-mapping", "model_frame", "axis mapping (model_frame, literal)")
	frameCmd.Flags().IntVar(&width, "width", 170, "viewport width")
	frameCmd.Flags().IntVar(&height, "height", 96, "viewport height")
	frameCmd.Flags().Float64Var(&roll, "roll", 0, "roll in degrees")
	frameCmd.Flags().Float64Var(&pitch, "pitch", 0, "pitch in degrees")
	frameCmd.Flags().StringVar(&pngOut, "png", "", "write the frame as PNG")
	frameCmd.Flags().StringVar(&svgOut, "svg", "", "write the frame as SVG")

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "show bounds and viewport fit of a model",
		Args:  cobra.NoArgs,
		RunE:  showFit,
	}
	fitCmd.Flags().StringVar(&modelName, "model", "ship", "wireframe model")
	fitCmd.Flags().IntVar(&width, "width", 170, "viewport width")
	fitCmd.Flags().IntVar(&height, "height", 96, "viewport height")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list built-in models",
		Args:  cobra.NoArgs,
		RunE:  listModels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded sessions",
		Args:  cobra.NoArgs,
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session]",
		Short: "plot roll and pitch of a session",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the history as SVG")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [session]",
		Short: "statistics and frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeSession,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session]",
		Short: "print session metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [session]",
		Short: "print session samples as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, frameCmd, fitCmd, modelsCmd, presetsCmd, listCmd, plotCmd, analyzeCmd, exportCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// indicatorFlags registers the flags shared by the commands that drive an
// indicator.
func indicatorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&modelName, "model", "ship", "wireframe model")
	cmd.Flags().StringVar(&sourceKind, "source", "sweep", "sample source (sweep, static, replay)")
	cmd.Flags().StringVar(&sessionID, "session", "", "session id to replay with --source replay")
	cmd.Flags().BoolVar(&loop, "loop", true, "restart the replay when the session ends")
	cmd.Flags().StringVar(&projection, "projection", "perspective", "projection mode (perspective, affine)")
	cmd.Flags().StringVar(&mapping, "axis-mapping", "model_frame", "axis mapping (model_frame, literal)")
	cmd.Flags().IntVar(&width, "width", 170, "viewport width")
	cmd.Flags().IntVar(&height, "height", 96, "viewport height")
	cmd.Flags().IntVar(&intervalMs, "interval", 100, "minimum milliseconds between ticks")
	cmd.Flags().BoolVar(&record, "record", false, "save accepted samples as a session")
}

func setupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}
