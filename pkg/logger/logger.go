package logger

import (
	"log/slog"
	"os"
)

// New constructs a text logger for the given component. Verbose mode lowers
// the level to Debug so status lines and per-document progress records become
// visible; otherwise only warnings and errors are emitted.
func New(component string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", component)
}
