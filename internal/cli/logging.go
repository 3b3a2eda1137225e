package cli

import (
	"io"
	"log/slog"

	"github.com/leapstack-labs/numguess/internal/cli/config"
)

// newLogger builds the process logger. Logs go to w (stderr in production) so
// they never mix with the game's output. Only warnings and errors are shown
// unless verbose is set.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("version", Version)
}
