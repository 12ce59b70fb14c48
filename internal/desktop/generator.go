package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mfriedrich/appdesk/internal/bundle"
	"github.com/mfriedrich/appdesk/internal/category"
	"github.com/mfriedrich/appdesk/internal/metrics"
)

// IconExtractor supplies the icon identifier for a bundle, or "" when no
// usable icon exists.
type IconExtractor interface {
	ExtractBest(ctx context.Context, b bundle.Bundle) string
}

// Generator synthesizes desktop entries for bundles. Each Generate call
// owns its state entirely; the only shared store is the filesystem.
type Generator struct {
	applicationsDir string
	icons           IconExtractor
	refresher       Refresher
	metrics         *metrics.Collector
	logger          *slog.Logger
}

// NewGenerator creates a generator writing into applicationsDir.
func NewGenerator(applicationsDir string, icons IconExtractor, refresher Refresher, collector *metrics.Collector, logger *slog.Logger) *Generator {
	return &Generator{
		applicationsDir: applicationsDir,
		icons:           icons,
		refresher:       refresher,
		metrics:         collector,
		logger:          logger,
	}
}

// Generate writes (or fully overwrites) the desktop entry for one bundle:
// icon extraction, category inference, rendering, then a best-effort menu
// refresh. Degraded icon extraction and refresh outcomes are absorbed; only
// a failed entry write is returned, and callers log it and move on to the
// next bundle.
func (g *Generator) Generate(ctx context.Context, b bundle.Bundle) error {
	start := time.Now()
	err := g.generate(ctx, b)
	g.metrics.Record(metrics.OpGenerate, time.Since(start), err == nil)
	return err
}

func (g *Generator) generate(ctx context.Context, b bundle.Bundle) error {
	logger := g.logger.With("request", uuid.New().String()[:8], "bundle", b.Path)
	name := b.Name()

	entry := Entry{
		Name:     name,
		Exec:     b.Path,
		Icon:     g.icons.ExtractBest(ctx, b),
		Category: category.Classify(name),
	}

	path := filepath.Join(g.applicationsDir, name+".desktop")
	if err := os.WriteFile(path, []byte(entry.Render()), 0o755); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	// WriteFile only applies the mode on create; keep overwrites executable.
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("chmod desktop entry: %w", err)
	}
	logger.Info("generated desktop entry", "path", path, "category", entry.Category)

	refreshStart := time.Now()
	outcome := g.refresher.Refresh(ctx, g.applicationsDir)
	g.metrics.Record(metrics.OpRefresh, time.Since(refreshStart), outcome == RefreshOK)
	logger.Debug("menu database refresh", "outcome", outcome.String())

	return nil
}
