package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mfriedrich/appdesk/internal/bundle"
	"github.com/mfriedrich/appdesk/internal/metrics"
)

var generateCmd = &cobra.Command{
	Use:   "generate [bundle...]",
	Short: "Generate desktop entries for bundles",
	Long: `Generate a desktop entry for every bundle in the bundle directory,
or only for the bundle paths given as arguments. Existing entries are
overwritten; a bundle whose icon extraction fails still gets an entry with
the generic executable icon.

Examples:
  appdesk generate
  appdesk generate ~/Downloads/Obsidian-1.6.7.AppImage`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := os.MkdirAll(cfg.ApplicationsDir, 0o755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}

	var bundles []bundle.Bundle
	if len(args) > 0 {
		for _, path := range args {
			if !bundle.Is(path) {
				logger.Warn("skipping non-bundle path", "path", path)
				continue
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", path, err)
			}
			bundles = append(bundles, bundle.Bundle{Path: abs})
		}
	} else {
		if err := os.MkdirAll(cfg.BundleDir, 0o755); err != nil {
			return fmt.Errorf("create bundle dir: %w", err)
		}
		logger.Info("scanning for bundles", "dir", cfg.BundleDir)

		var err error
		bundles, err = bundle.Scan(cfg.BundleDir)
		if err != nil {
			return err
		}
	}

	if len(bundles) == 0 {
		logger.Info("no bundles found")
		return nil
	}
	logger.Info("found bundles", "count", len(bundles))

	collector := metrics.NewCollector()
	gen := newGenerator(collector)

	for _, b := range bundles {
		logger.Info("processing bundle", "path", b.Path)
		if err := gen.Generate(ctx, b); err != nil {
			// One bundle's failure never aborts the batch.
			logger.Error("generation failed", "bundle", b.Path, "error", err)
		}
	}

	logSummary(collector)
	return nil
}
