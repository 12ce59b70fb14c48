package desktop

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Outcome reports the result of a menu-database refresh attempt. All three
// outcomes are advisory; none is ever treated as a generation failure.
type Outcome int

const (
	RefreshOK Outcome = iota
	RefreshUnavailable
	RefreshFailed
)

func (o Outcome) String() string {
	switch o {
	case RefreshOK:
		return "ok"
	case RefreshUnavailable:
		return "unavailable"
	case RefreshFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Refresher asks the desktop environment to reload its menu database.
type Refresher interface {
	Refresh(ctx context.Context, applicationsDir string) Outcome
}

const refreshCommand = "update-desktop-database"

// CommandRefresher shells out to update-desktop-database.
type CommandRefresher struct {
	// Timeout bounds the subprocess; zero means no limit.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Refresh runs the refresh command for applicationsDir. A missing binary
// reports unavailable, a failing run reports failed; both are logged as
// warnings only.
func (r CommandRefresher) Refresh(ctx context.Context, applicationsDir string) Outcome {
	if _, err := exec.LookPath(refreshCommand); err != nil {
		r.Logger.Warn("update-desktop-database not found")
		return RefreshUnavailable
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, refreshCommand, applicationsDir).CombinedOutput()
	if err != nil {
		r.Logger.Warn("failed to update desktop database",
			"dir", applicationsDir,
			"error", err,
			"output", strings.TrimSpace(string(out)))
		return RefreshFailed
	}

	r.Logger.Info("updated desktop database", "dir", applicationsDir)
	return RefreshOK
}
