package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfriedrich/appdesk/internal/bundle"
	"github.com/mfriedrich/appdesk/internal/metrics"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// chanGenerator forwards generated bundle paths to a channel.
type chanGenerator struct {
	paths chan string
}

func (g *chanGenerator) Generate(ctx context.Context, b bundle.Bundle) error {
	g.paths <- b.Path
	return nil
}

func TestWatcherDispatchesNewBundles(t *testing.T) {
	dir := t.TempDir()
	gen := &chanGenerator{paths: make(chan string, 8)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(dir, gen, metrics.NewCollector(), testLogger())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register before creating files.
	time.Sleep(200 * time.Millisecond)

	bundlePath := filepath.Join(dir, "NewApp.AppImage")
	require.NoError(t, os.WriteFile(bundlePath, []byte("fake"), 0o755))
	// Non-bundle files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case got := <-gen.paths:
		assert.Equal(t, bundlePath, got)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not dispatch the new bundle")
	}

	// No second dispatch for the text file.
	select {
	case got := <-gen.paths:
		t.Fatalf("unexpected dispatch for %q", got)
	case <-time.After(500 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"), &chanGenerator{paths: make(chan string, 1)}, metrics.NewCollector(), testLogger())
	err := w.Run(context.Background())
	require.Error(t, err)
}

func TestWatcherRecordsMetrics(t *testing.T) {
	dir := t.TempDir()
	gen := &chanGenerator{paths: make(chan string, 8)}
	col := metrics.NewCollector()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(dir, gen, col, testLogger())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.AppImage"), []byte("x"), 0o755))

	select {
	case <-gen.paths:
	case <-time.After(5 * time.Second):
		t.Fatal("no dispatch")
	}

	cancel()
	<-done

	assert.EqualValues(t, 1, col.Snapshot().Operations[metrics.OpWatchEvent].Count)
}
