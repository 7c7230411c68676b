package navstate

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
)

// Re-exported router sentinels so callers of the top-level package can test
// errors without importing router.
var (
	ErrMissingParameter = router.ErrMissingParameter
	ErrInvalidParameter = router.ErrInvalidParameter
	ErrNoTabs           = router.ErrNoTabs
)

// ConfigError reports a problem building navigation state from configuration
// (a layout file that cannot be read or is invalid). These errors happen at
// startup, never during navigation.
type ConfigError struct {
	Op   string // Operation that failed (e.g., "load_layout", "build_tabs")
	Path string // Source file, if any
	Err  error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("navstate: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("navstate: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op, path string, err error) *ConfigError {
	return &ConfigError{Op: op, Path: path, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsParameterError checks if an error came from reading a route parameter.
func IsParameterError(err error) bool {
	return router.IsParameterError(err)
}
