// Package constants defines environment variables and defaults shared by the
// navstate packages and tools.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at initialization.
const (
	DebugEnvVar      = "NAVSTATE_DEBUG"     // Any non-empty value enables internal debug logging
	LogLevelEnvVar   = "NAVSTATE_LOG_LEVEL" // Application log level: debug, info, warn, error
	LayoutPathEnvVar = "NAVSTATE_LAYOUT"    // Default tab layout file for tools
	LanguageEnvVar   = "NAVSTATE_LANG"      // Preferred title language for tools
)

// Defaults used when nothing else is configured.
const (
	DefaultLayoutFile = "layout.toml"
	DefaultLanguage   = "en"
	DefaultLogLevel   = "info"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// IsDebug returns true if internal debug logging was requested through the environment.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != "" || IsDevMode()
}

// EnvOr returns the value of the environment variable key, or fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
