// Package watcher feeds newly arriving bundles to the generator.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mfriedrich/appdesk/internal/bundle"
	"github.com/mfriedrich/appdesk/internal/metrics"
)

// Generator is the per-bundle callback; *desktop.Generator implements it.
type Generator interface {
	Generate(ctx context.Context, b bundle.Bundle) error
}

// Watcher reacts to bundles created in (or moved into) a directory.
// Dispatch is synchronous and in event order; there is no de-duplication,
// so rapid repeat events for one bundle each trigger a full generation.
type Watcher struct {
	dir       string
	generator Generator
	metrics   *metrics.Collector
	logger    *slog.Logger
}

// New creates a watcher over dir.
func New(dir string, gen Generator, collector *metrics.Collector, logger *slog.Logger) *Watcher {
	return &Watcher{
		dir:       dir,
		generator: gen,
		metrics:   collector,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled. Files moved into the directory are
// reported by the kernel as creates, so a single Create filter covers both
// arrival paths. Generation failures are logged and the loop continues.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching for bundles", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping watcher")
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Create) || !bundle.Is(ev.Name) {
				continue
			}
			w.logger.Info("new bundle detected", "path", ev.Name)

			start := time.Now()
			err := w.generator.Generate(ctx, bundle.Bundle{Path: ev.Name})
			w.metrics.Record(metrics.OpWatchEvent, time.Since(start), err == nil)
			if err != nil {
				w.logger.Error("generation failed", "bundle", ev.Name, "error", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}
