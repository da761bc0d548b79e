package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/config"
	"github.com/san-kum/rodopios/internal/logging"
	"github.com/san-kum/rodopios/internal/storage"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	preset     string
	intervalMs int
	// Output file for export commands; empty means stdout.
	outFile string
	// Run name for import
	runName string
	// Step to stop at for svg; zero means the whole trace.
	stopAt int
	// Replay against the wall clock instead of the virtual one
	realtime bool
	// Print the step table after encode
	showTrace bool
	// Concurrent imports
	workers int
	// Prometheus textfile written after replay
	metricsFile string
	// Reload the animation when the trace file changes
	watchFile bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "rodopios",
		Short:             "sequential highlight animator for base-40 key traces",
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		RunE:              pickRun,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&preset, "preset", "", "speed preset (see presets)")
	pf.IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "milliseconds between steps")

	animateCmd := &cobra.Command{
		Use:   "animate [trace|run_id]",
		Short: "animate a trace on the wheel",
		Args:  cobra.ExactArgs(1),
		RunE:  animateTrace,
	}
	animateCmd.Flags().BoolVar(&watchFile, "watch", false, "restart when the trace file changes")

	replayCmd := &cobra.Command{
		Use:   "replay [trace|run_id]",
		Short: "replay a trace headless and print the highlight commands",
		Args:  cobra.ExactArgs(1),
		RunE:  replayTrace,
	}
	replayCmd.Flags().BoolVar(&realtime, "realtime", false, "wait the configured interval between steps")
	replayCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write counters in prometheus text format")

	importCmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "store trace files as runs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  importTrace,
	}
	importCmd.Flags().StringVar(&runName, "name", "", "run name (defaults to the file name)")
	importCmd.Flags().IntVarP(&workers, "workers", "w", 4, "files imported concurrently")

	playlistCmd := &cobra.Command{
		Use:   "playlist [file]",
		Short: "replay every trace listed in a yaml playlist",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlaylist,
	}
	playlistCmd.Flags().BoolVar(&realtime, "realtime", false, "wait the configured interval between steps")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a run's steps",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a run",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [trace|run_id]",
		Short: "plot slot and rotation series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}

	reportCmd := &cobra.Command{
		Use:   "report [trace|run_id]",
		Short: "summarise a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  reportTrace,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [trace|run_id]",
		Short: "export the step table as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [trace|run_id]",
		Short: "export the trace as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file")

	svgCmd := &cobra.Command{
		Use:   "svg [trace|run_id]",
		Short: "render the wheel as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file")
	svgCmd.Flags().IntVar(&stopAt, "step", 0, "stop after this many steps")

	encodeCmd := &cobra.Command{
		Use:   "encode [value]",
		Short: "encode a decimal or 0x-prefixed hex value",
		Args:  cobra.ExactArgs(1),
		RunE:  encodeValue,
	}
	encodeCmd.Flags().BoolVar(&showTrace, "trace", false, "print the per-symbol steps")

	decodeCmd := &cobra.Command{
		Use:   "decode [symbols]",
		Short: "decode a symbol string",
		Args:  cobra.ExactArgs(1),
		RunE:  decodeSymbols,
	}

	alphabetCmd := &cobra.Command{
		Use:   "alphabet",
		Short: "list the symbol wheel",
		RunE:  listAlphabet,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list speed presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(animateCmd, replayCmd, playlistCmd, importCmd, listCmd, showCmd, deleteCmd,
		plotCmd, reportCmd, exportCSVCmd, exportJSONCmd, svgCmd,
		encodeCmd, decodeCmd, alphabetCmd, presetsCmd)
	return rootCmd
}

// setup layers configuration: defaults, then the config file, then the
// environment, then the preset, then any flag set on the command line.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if preset != "" && !cfg.ApplyPreset(preset) {
		return fmt.Errorf("unknown preset %q", preset)
	}

	flags := cmd.Flags()
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("configured",
		zap.String("data", cfg.DataDir),
		zap.Duration("interval", cfg.Interval()),
		zap.Int("symbols", len(cfg.Alphabet)))
	return nil
}

func store() *storage.Store {
	return storage.New(cfg.DataDir)
}

func wheelAlphabet() (*alphabet.Alphabet, error) {
	return cfg.AlphabetOrDefault()
}
