package icon

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	_ "image/png" // pixel-dimension probe for PNG candidates

	"github.com/mfriedrich/appdesk/internal/bundle"
	"github.com/mfriedrich/appdesk/internal/metrics"
)

// Extractor unpacks bundles and maintains the icon theme cache.
type Extractor struct {
	themeDir string
	timeout  time.Duration
	metrics  *metrics.Collector
	logger   *slog.Logger
}

// NewExtractor creates an extractor writing into themeDir. timeout bounds
// each bundle's self-extraction subprocess.
func NewExtractor(themeDir string, timeout time.Duration, collector *metrics.Collector, logger *slog.Logger) *Extractor {
	return &Extractor{
		themeDir: themeDir,
		timeout:  timeout,
		metrics:  collector,
		logger:   logger,
	}
}

// ExtractBest unpacks the bundle into a scratch directory, copies every
// discovered icon into the theme cache, and returns the identifier (stem)
// of the best-scoring one. It returns "" when extraction fails or yields
// no icons; every failure is logged and degrades, nothing propagates.
func (e *Extractor) ExtractBest(ctx context.Context, b bundle.Bundle) string {
	start := time.Now()
	id := e.extractBest(ctx, b)
	e.metrics.Record(metrics.OpExtract, time.Since(start), id != "")
	return id
}

func (e *Extractor) extractBest(ctx context.Context, b bundle.Bundle) string {
	scratch, err := os.MkdirTemp("", "appdesk-extract-*")
	if err != nil {
		e.logger.Error("failed to create scratch dir", "error", err)
		return ""
	}
	defer os.RemoveAll(scratch)

	e.logger.Info("extracting bundle", "bundle", b.Path, "scratch", scratch)
	if err := e.runExtraction(ctx, b.Path, scratch); err != nil {
		e.logger.Warn("bundle extraction failed", "bundle", b.Path, "error", err)
		return ""
	}

	candidates := enumerate(scratch)
	if len(candidates) == 0 {
		e.logger.Warn("no icons found in bundle", "bundle", b.Path)
		return ""
	}
	e.logger.Info("found icon candidates", "bundle", b.Path, "count", len(candidates))

	bestIdx, bestScore := best(candidates, e.pixelArea)
	e.logger.Info("selected best icon",
		"icon", candidates[bestIdx].Path,
		"score", bestScore)

	// Every candidate is cached, not just the winner, so the theme has a
	// version of the icon at each size the bundle shipped.
	for _, c := range candidates {
		dest, err := cache(e.themeDir, c)
		if err != nil {
			e.logger.Warn("failed to cache icon", "icon", c.Path, "error", err)
			continue
		}
		e.logger.Debug("cached icon", "dest", dest)
	}

	return candidates[bestIdx].Stem()
}

// runExtraction invokes the bundle's self-extraction mode with the scratch
// directory as working directory.
func (e *Extractor) runExtraction(ctx context.Context, bundlePath, scratch string) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bundlePath, "--appimage-extract")
	cmd.Dir = scratch

	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("timed out after %s", e.timeout)
		}
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// pixelArea decodes a candidate's header and returns width*height, or 0
// when the image cannot be decoded. Only PNGs are probed.
func (e *Extractor) pixelArea(c Candidate) int {
	f, err := os.Open(c.Path)
	if err != nil {
		e.logger.Warn("could not open icon for probing", "icon", c.Path, "error", err)
		return 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		e.logger.Warn("could not decode icon dimensions", "icon", c.Path, "error", err)
		return 0
	}
	return cfg.Width * cfg.Height
}
