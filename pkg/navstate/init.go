// Package navstate is the entry point to the navigation state library.
//
// It wires the router package's stacks, modal stack, tab coordinator and
// change notifier into a Host, and owns process-wide setup such as logging.
// Rendering layers hold a Host, drive it through its Navigator, and re-render
// from Host.Snapshot when a subscribed listener fires.
package navstate

import (
	"log/slog"

	"github.com/BrandonKowalski/navstate/pkg/navstate/constants"
	"github.com/BrandonKowalski/navstate/pkg/navstate/internal"
)

// Options configures process-wide navstate behavior.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level: "debug", "info", "warn", "error"
	Debug    bool   // Emit navstate's own debug records (ignored transitions, state changes)
}

// Init configures logging. It is optional; without it navstate logs errors
// to stdout only. Call it before creating any Host.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Debug || constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	level := options.LogLevel
	if level == "" {
		level = constants.EnvOr(constants.LogLevelEnvVar, constants.DefaultLogLevel)
	}
	internal.SetRawLogLevel(level)
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
