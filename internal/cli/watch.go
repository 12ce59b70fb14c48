package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mfriedrich/appdesk/internal/metrics"
	"github.com/mfriedrich/appdesk/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Generate entries continuously as bundles arrive",
	Long: `Watch the bundle directory and generate a desktop entry for every
bundle created in or moved into it. Runs until interrupted.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.BundleDir, 0o755); err != nil {
		return fmt.Errorf("create bundle dir: %w", err)
	}
	if err := os.MkdirAll(cfg.ApplicationsDir, 0o755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}

	logger.Info("starting bundle monitor",
		"bundle_dir", cfg.BundleDir,
		"applications_dir", cfg.ApplicationsDir)

	collector := metrics.NewCollector()
	w := watcher.New(cfg.BundleDir, newGenerator(collector), collector, logger)

	err := w.Run(ctx)
	logSummary(collector)
	return err
}
