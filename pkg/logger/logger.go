package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a text logger
// so packages that log before Init (or under test) never hit a nil pointer.
var Log = slog.Default()

// Init switches the process to JSON logging on stdout.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}
