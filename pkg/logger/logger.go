package logger

import (
	"log/slog"
	"os"
)

// Log defaults to the stdlib logger so code paths hit before Init
// (or from tests) never panic.
var Log = slog.Default()

func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
