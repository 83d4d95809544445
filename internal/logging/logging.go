// Package logging configures slog and provides HTTP request logging.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default slog logger writing to stdout.
func Setup(devMode bool) {
	slog.SetDefault(New(os.Stdout, devMode))
}

// New builds a logger. Dev mode logs debug-level text; otherwise JSON at info.
func New(w io.Writer, devMode bool) *slog.Logger {
	if devMode {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
