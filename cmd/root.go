package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/busy-bee/internal/config"
	"github.com/Tiliavir/busy-bee/internal/model"
	"github.com/Tiliavir/busy-bee/internal/report"
	"github.com/Tiliavir/busy-bee/internal/storage"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	storageDir string
	verbose    bool

	now    func() time.Time
	loc    *time.Location
	styled bool

	store    *storage.Store
	reporter *report.Reporter
}

// exitError carries the process exit code for an error: 1 for bad input,
// 2 for storage and report failures.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func failure(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: 2, err: err}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "busy-bee",
		Short: "busy-bee – a small tool to maintain a log of working times",
		Long: `busy-bee records when you clock in and out and sums up the time worked
per day, ISO calendar week and month. Each day is stored as a plain text file
(YYYY-MM-DD.csv) in the storage directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.storageDir, "storage-dir", "", "Directory for recorded events (overrides config and "+config.EnvStorageDir+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log storage operations to stderr")

	rootCmd.AddCommand(newClockCmd(a, model.ClockIn))
	rootCmd.AddCommand(newClockCmd(a, model.ClockOut))
	rootCmd.AddCommand(newViewCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newReportCmd(a))
	rootCmd.AddCommand(newWeeklyReportCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	return rootCmd
}

// setup loads the configuration, installs the logger and opens the store.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	dir := a.storageDir
	if dir == "" {
		dir = cfg.StorageDir
	}
	if dir == "" {
		if dir, err = storage.BaseDir(); err != nil {
			return err
		}
	}

	if a.now == nil {
		a.now = time.Now
	}
	if a.loc == nil {
		a.loc = time.Local
	}
	a.store = &storage.Store{Dir: dir, Location: a.loc, Logger: logger}
	a.reporter = &report.Reporter{Location: a.loc, Now: a.now}
	if a.styled {
		a.reporter.Styles = terminalStyles()
	}
	logger.Debug("storage ready", "dir", dir)
	return nil
}

// today returns midnight of the current local date.
func (a *app) today() time.Time {
	return a.store.Day(a.now())
}

func terminalStyles() report.Styles {
	warning := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8700")).Bold(true)
	header := lipgloss.NewStyle().Bold(true)
	return report.Styles{
		Warning: func(s string) string { return warning.Render(s) },
		Header:  func(s string) string { return header.Render(s) },
	}
}

// Execute is the entry point called from main.
func Execute() {
	a := &app{styled: true}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}
