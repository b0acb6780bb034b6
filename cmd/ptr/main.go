package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ytget/pulltorefresh/internal/gesture"
	"github.com/ytget/pulltorefresh/internal/platform"
	"github.com/ytget/pulltorefresh/internal/trace"
	"github.com/ytget/pulltorefresh/internal/tui"
)

var (
	BuildVersion   = "dev"
	BuildCommit    = "00000000"
	BuildDate      = "unknown"
	BuildGoVersion = runtime.Version()
)

var (
	errApp        = errors.New("application error")
	errLoggerInit = errors.New("failed to initialize logger")
)

const defaultLogName = "ptr.log"

var (
	verbose  bool
	logPath  string
	items    int
	latency  time.Duration
	tracePad int

	rootCmd = &cobra.Command{
		Use:           "ptr",
		Short:         "Pull-to-refresh gesture tools",
		Long:          `ptr - replay recorded pull-to-refresh gestures or try one in the terminal`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	replayCmd = &cobra.Command{
		Use:   "replay <trace.yaml>...",
		Short: "Replay recorded gesture traces",
		Long:  "Feed each trace through a fresh gesture machine and print the listener callbacks",
		Args:  cobra.MinimumNArgs(1),
		RunE:  replay,
	}

	tuiCmd = &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal demo",
		Long:  "Show a list that refreshes when dragged down from its first row with the left mouse button",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log gesture transitions")

	replayCmd.Flags().IntVar(&tracePad, "pad", 0, "Indent records by this many spaces")

	tuiCmd.Flags().IntVar(&items, "items", tui.DefaultItems, "Initial number of rows")
	tuiCmd.Flags().DurationVar(&latency, "latency", tui.DefaultLatency, "Simulated refresh duration")
	tuiCmd.Flags().StringVar(&logPath, "log-file", filepath.Join(platform.StateDir(), defaultLogName), "Log file path")

	rootCmd.AddCommand(replayCmd, tuiCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func version(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ptr - pull-to-refresh tools\n\n")
	fmt.Fprintf(out, "  Version: %s\n", BuildVersion)
	fmt.Fprintf(out, "  Commit:  %s\n", BuildCommit)
	fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  Runtime: %s\n\n", BuildGoVersion)
}

func replay(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel()}))
	out := cmd.OutOrStdout()

	var errs []error
	for _, path := range args {
		t, err := trace.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		result, errReplay := trace.Replay(t, logger)
		if errReplay != nil {
			errs = append(errs, errReplay)
			continue
		}

		printResult(out, path, result)
	}

	if len(errs) > 0 {
		return errors.Join(append(errs, errApp)...)
	}

	return nil
}

func printResult(out io.Writer, path string, result *trace.Result) {
	pad := fmt.Sprintf("%*s", tracePad, "")

	fmt.Fprintf(out, "%s (%s)\n", path, result.TraceID)
	for _, record := range result.Records {
		fmt.Fprintf(out, "%s  %s\n", pad, record)
	}

	final := gesture.PhaseIdle
	if n := len(result.Phases); n > 0 {
		final = result.Phases[n-1]
	}
	fmt.Fprintf(out, "%s  final phase: %s, %d steps\n", pad, final, len(result.Phases))
}

// loggerInit sends slog output to a file; the terminal belongs to the ui
func loggerInit(path string, level slog.Level) (io.Closer, error) {
	if err := platform.PrepareFile(path); err != nil {
		return nil, errors.Join(err, errLoggerInit)
	}

	logFile, errLogFile := os.Create(path)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level})))

	return logFile, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	logFile, errLogger := loggerInit(logPath, logLevel())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting ptr tui", slog.String("version", BuildVersion),
		slog.Int("items", items), slog.Duration("latency", latency))

	program := tea.NewProgram(tui.New(tui.Options{Items: items, Latency: latency, Logger: slog.Default()}),
		tea.WithMouseCellMotion(), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
