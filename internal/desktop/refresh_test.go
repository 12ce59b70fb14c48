package desktop

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withFakeRefreshCommand puts a stub update-desktop-database on PATH.
func withFakeRefreshCommand(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, refreshCommand)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	t.Setenv("PATH", dir)
}

func TestCommandRefresherOK(t *testing.T) {
	withFakeRefreshCommand(t, "#!/bin/sh\nexit 0\n")

	r := CommandRefresher{Timeout: 5 * time.Second, Logger: testLogger()}
	assert.Equal(t, RefreshOK, r.Refresh(context.Background(), t.TempDir()))
}

func TestCommandRefresherFailed(t *testing.T) {
	withFakeRefreshCommand(t, "#!/bin/sh\necho 'no database' >&2\nexit 1\n")

	r := CommandRefresher{Timeout: 5 * time.Second, Logger: testLogger()}
	assert.Equal(t, RefreshFailed, r.Refresh(context.Background(), t.TempDir()))
}

func TestCommandRefresherUnavailable(t *testing.T) {
	// An empty PATH directory has no update-desktop-database.
	t.Setenv("PATH", t.TempDir())

	r := CommandRefresher{Logger: testLogger()}
	assert.Equal(t, RefreshUnavailable, r.Refresh(context.Background(), t.TempDir()))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "ok", RefreshOK.String())
	assert.Equal(t, "unavailable", RefreshUnavailable.String())
	assert.Equal(t, "failed", RefreshFailed.String())
}
