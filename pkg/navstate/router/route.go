package router

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Destination is implemented by application route types that carry their own
// strongly typed parameters.
//
// Example:
//
//	type DetailsRoute struct {
//	    ItemID string
//	    Title  string
//	}
//
//	func (DetailsRoute) RouteID() string { return "details" }
type Destination interface {
	RouteID() string
}

// parameterizer lets a Destination expose legacy key/value parameters too.
type parameterizer interface {
	Parameters() map[string]any
}

// Route identifies a destination plus the parameters it was opened with.
// Routes are immutable values. Two routes with the same ID but different
// parameters are different instances, but they match for PopTo purposes.
type Route struct {
	id          string
	params      map[string]any
	destination Destination
	key         uuid.UUID
}

// NewRoute creates a route with the given identity and parameters.
// The parameter map is copied.
func NewRoute(id string, params map[string]any) Route {
	return Route{
		id:     id,
		params: maps.Clone(params),
		key:    uuid.New(),
	}
}

// To creates a route from a typed destination.
func To(d Destination) Route {
	r := Route{
		id:          d.RouteID(),
		destination: d,
		key:         uuid.New(),
	}
	if p, ok := d.(parameterizer); ok {
		r.params = maps.Clone(p.Parameters())
	}
	return r
}

// ID returns the route identity.
func (r Route) ID() string {
	return r.id
}

// InstanceKey uniquely identifies this route instance. It is stable for the
// lifetime of the value and never used for matching.
func (r Route) InstanceKey() uuid.UUID {
	return r.key
}

// Parameters returns a copy of the route's parameters.
func (r Route) Parameters() map[string]any {
	if r.params == nil {
		return map[string]any{}
	}
	return maps.Clone(r.params)
}

// Destination returns the typed destination the route was built from, if any.
func (r Route) Destination() Destination {
	return r.destination
}

// WithParameters returns a new route instance with the same ID and the given parameters.
func (r Route) WithParameters(params map[string]any) Route {
	return Route{
		id:     r.id,
		params: maps.Clone(params),
		key:    uuid.New(),
	}
}

// Matches reports whether two routes share an identity.
func (r Route) Matches(other Route) bool {
	return r.id == other.id
}

// IsZero reports whether the route was never constructed.
func (r Route) IsZero() bool {
	return r.id == "" && r.key == uuid.Nil
}

func (r Route) String() string {
	if len(r.params) == 0 {
		return r.id
	}
	keys := slices.Sorted(maps.Keys(r.params))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, r.params[k]))
	}
	return r.id + "{" + strings.Join(parts, ",") + "}"
}

// GetParameter returns the parameter stored under key if it exists and has type T.
func GetParameter[T any](r Route, key string) (T, bool) {
	var zero T
	v, ok := r.params[key]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// RequireParameter returns the parameter stored under key, or a *ParameterError
// when it is missing or not a T.
func RequireParameter[T any](r Route, key string) (T, error) {
	var zero T
	v, ok := r.params[key]
	if !ok {
		return zero, &ParameterError{RouteID: r.id, Key: key, Want: typeName[T](), Err: ErrMissingParameter}
	}
	t, ok := v.(T)
	if !ok {
		return zero, &ParameterError{RouteID: r.id, Key: key, Want: typeName[T](), Err: ErrInvalidParameter}
	}
	return t, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// MustParameter is like RequireParameter but panics with the *ParameterError.
// Screens use it where continuing with bad data is worse than failing.
func MustParameter[T any](r Route, key string) T {
	t, err := RequireParameter[T](r, key)
	if err != nil {
		panic(err)
	}
	return t
}

// DestinationAs recovers the typed destination of a route.
func DestinationAs[D Destination](r Route) (D, bool) {
	d, ok := r.destination.(D)
	return d, ok
}
