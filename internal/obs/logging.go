// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger used by the tool.
//
// Logger is exported to allow other packages to use it for logging.
var Logger *slog.Logger

// InitLogger initializes the global Logger with a JSON handler on
// stderr at the given level. Diagnostics go to stderr so stdout stays
// free for results.
func InitLogger(level string) {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: ParseLevel(level)})
	Logger = slog.New(h)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
