package util

import (
	"io"
	"log/slog"
)

// -----------------------------------------------------------------------------

// LoggerOrDiscard returns the given logger or, if nil, one that drops every record.
func LoggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
