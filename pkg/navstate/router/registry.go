package router

import (
	"maps"
	"slices"
)

// RegistryBuilder collects route renderers before the registry is frozen.
// R is whatever the rendering layer draws with: a screen function, a
// template, a widget constructor.
type RegistryBuilder[R any] struct {
	renderers map[string]R
}

// NewRegistryBuilder creates an empty builder.
func NewRegistryBuilder[R any]() *RegistryBuilder[R] {
	return &RegistryBuilder[R]{renderers: make(map[string]R)}
}

// Register maps a route ID to its renderer. A later registration for the same ID wins.
func (b *RegistryBuilder[R]) Register(routeID string, renderer R) *RegistryBuilder[R] {
	b.renderers[routeID] = renderer
	return b
}

// RegisterDestination registers renderer under the ID of destination d.
func (b *RegistryBuilder[R]) RegisterDestination(d Destination, renderer R) *RegistryBuilder[R] {
	return b.Register(d.RouteID(), renderer)
}

// Build returns an immutable registry. The builder may keep being used
// without affecting registries already built.
func (b *RegistryBuilder[R]) Build() *Registry[R] {
	return &Registry[R]{renderers: maps.Clone(b.renderers)}
}

// Registry resolves routes to renderers. It holds no navigation logic.
type Registry[R any] struct {
	renderers map[string]R
}

// Resolve returns the renderer registered for route's ID.
// A miss is not an error; the caller picks its own fallback.
func (r *Registry[R]) Resolve(route Route) (R, bool) {
	renderer, ok := r.renderers[route.ID()]
	return renderer, ok
}

// Has reports whether a renderer is registered for routeID.
func (r *Registry[R]) Has(routeID string) bool {
	_, ok := r.renderers[routeID]
	return ok
}

// IDs returns the registered route IDs, sorted.
func (r *Registry[R]) IDs() []string {
	return slices.Sorted(maps.Keys(r.renderers))
}

// Len returns the number of registered routes.
func (r *Registry[R]) Len() int {
	return len(r.renderers)
}

// Typed adapts a function written against destination type D into one that
// accepts any Route. The returned function panics with a *ParameterError if
// it is handed a route that was not built from a D.
func Typed[D Destination, T any](fn func(D) T) func(Route) T {
	return func(route Route) T {
		d, ok := DestinationAs[D](route)
		if !ok {
			panic(&ParameterError{RouteID: route.ID(), Key: "destination", Want: typeName[D](), Err: ErrInvalidParameter})
		}
		return fn(d)
	}
}
