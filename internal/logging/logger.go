package logging

import (
	"io"
	"log/slog"
	"os"
)

var stderr io.Writer = os.Stderr

// Setup initializes the global slog logger with JSON output to stderr.
// stdout is reserved for generated SQL.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(NewJSONHandler(stderr, level)))
}

func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
