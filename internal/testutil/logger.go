package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Tests inject it
// wherever the lifecycle controller or router requires a logger.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
