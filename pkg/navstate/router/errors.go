package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions the router reports loudly.
// Every other invalid navigation request is a silent no-op.
var (
	// ErrMissingParameter indicates a required route parameter was not supplied.
	ErrMissingParameter = errors.New("required parameter not found")

	// ErrInvalidParameter indicates a route parameter exists but holds the wrong type.
	ErrInvalidParameter = errors.New("parameter has wrong type")

	// ErrNoTabs is returned when a TabCoordinator is built without any tabs.
	ErrNoTabs = errors.New("at least one tab is required")
)

// ParameterError is raised at the point a screen reads a route parameter
// that is missing or of an unexpected type.
type ParameterError struct {
	RouteID string // Route the parameter was read from
	Key     string // Parameter key, or the destination type name for typed routes
	Want    string // Expected Go type
	Err     error  // ErrMissingParameter or ErrInvalidParameter
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("router: route %q parameter %q (%s): %v", e.RouteID, e.Key, e.Want, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// IsParameterError checks if an error is a ParameterError.
func IsParameterError(err error) bool {
	var paramErr *ParameterError
	return errors.As(err, &paramErr)
}
