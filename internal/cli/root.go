// Package cli provides the command-line interface for appdesk.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mfriedrich/appdesk/internal/config"
	"github.com/mfriedrich/appdesk/internal/desktop"
	"github.com/mfriedrich/appdesk/internal/icon"
	"github.com/mfriedrich/appdesk/internal/metrics"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	configPath string
	verbose    bool

	// Global config and logger, resolved once before any subcommand runs.
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "appdesk",
	Short: "Desktop menu entries for AppImage bundles",
	Long: `Appdesk turns a directory of AppImage bundles into desktop menu
entries. For each bundle it extracts and scores the icons the bundle
ships, caches them into the hicolor icon theme, infers a menu category
from the application name, and writes a freedesktop .desktop launcher.

Run 'appdesk generate' for a one-shot pass over the bundle directory, or
'appdesk watch' to keep generating as new bundles arrive.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		logger, logCleanup = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// newGenerator assembles the generation pipeline shared by the one-shot
// and watch commands.
func newGenerator(collector *metrics.Collector) *desktop.Generator {
	extractor := icon.NewExtractor(cfg.IconThemeDir, cfg.ExtractTimeout, collector, logger)
	refresher := desktop.CommandRefresher{Timeout: cfg.RefreshTimeout, Logger: logger}
	return desktop.NewGenerator(cfg.ApplicationsDir, extractor, refresher, collector, logger)
}

// logSummary emits per-operation stats at the end of a run.
func logSummary(collector *metrics.Collector) {
	snap := collector.Snapshot()

	ops := make([]string, 0, len(snap.Operations))
	for op := range snap.Operations {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	for _, op := range ops {
		s := snap.Operations[op]
		logger.Info("operation stats",
			"op", op,
			"count", s.Count,
			"failures", s.Failures,
			"avg_ms", s.AvgTimeMs,
			"max_ms", s.MaxTimeMs)
	}
	logger.Info("run complete", "uptime_s", snap.UptimeSeconds)
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/appdesk/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(listCmd)
}
