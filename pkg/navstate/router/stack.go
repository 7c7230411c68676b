package router

import (
	"slices"

	"github.com/BrandonKowalski/navstate/pkg/navstate/internal"
	"go.uber.org/atomic"
)

// RouteStack is the ordered navigation history of one context (the root app or a tab).
//
// A RouteStack is never empty: it always holds at least its root route, and no
// operation can remove it. Each mutation publishes a complete new entries slice,
// so a reader on another goroutine sees either the state before or the state
// after a call, never a partial update. Mutations themselves must come from a
// single goroutine at a time.
type RouteStack struct {
	entries atomic.Pointer[[]Route]
	observe Listener
}

// NewRouteStack creates a stack whose root is the given route.
func NewRouteStack(root Route) *RouteStack {
	s := &RouteStack{}
	entries := []Route{root}
	s.entries.Store(&entries)
	return s
}

// Observe sets the listener called after every state-changing operation.
// It replaces any previously set listener.
func (s *RouteStack) Observe(fn Listener) {
	s.observe = fn
}

func (s *RouteStack) load() []Route {
	return *s.entries.Load()
}

// store publishes next without notifying.
func (s *RouteStack) store(next []Route) {
	s.entries.Store(&next)
}

func (s *RouteStack) commit(next []Route, op Op) {
	s.store(next)
	if s.observe != nil {
		s.observe(Change{Op: op, Transition: op.Transition()})
	}
}

// Current returns the top route.
func (s *RouteStack) Current() Route {
	entries := s.load()
	return entries[len(entries)-1]
}

// Root returns the bottom route.
func (s *RouteStack) Root() Route {
	return s.load()[0]
}

// CanGoBack returns true if there is a route below the current one.
func (s *RouteStack) CanGoBack() bool {
	return len(s.load()) > 1
}

// Len returns the number of entries in the stack.
func (s *RouteStack) Len() int {
	return len(s.load())
}

// Entries returns a copy of the stack, root first.
func (s *RouteStack) Entries() []Route {
	return slices.Clone(s.load())
}

// Push adds a route on top of the stack.
func (s *RouteStack) Push(route Route) {
	s.commit(append(slices.Clip(s.load()), route), OpPush)
}

// Pop removes the current route.
// Returns false without changing anything if the current route is the root.
func (s *RouteStack) Pop() bool {
	entries := s.load()
	if len(entries) <= 1 {
		internal.GetInternalLogger().Debug("Ignoring pop at root", "route", entries[0].ID())
		return false
	}
	s.commit(entries[:len(entries)-1], OpPop)
	return true
}

// PopTo removes routes above the topmost entry whose ID matches route.
// Returns false without changing anything if no entry matches, or if the
// match is already the current route.
func (s *RouteStack) PopTo(route Route) bool {
	entries := s.load()
	index := -1
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Matches(route) {
			index = i
			break
		}
	}
	if index == -1 || index == len(entries)-1 {
		internal.GetInternalLogger().Debug("Ignoring pop to route", "route", route.ID(), "found", index != -1)
		return false
	}
	s.commit(entries[:index+1], OpPopTo)
	return true
}

// PopToRoot removes every route above the root. Does nothing at the root.
func (s *RouteStack) PopToRoot() {
	entries := s.load()
	if len(entries) == 1 {
		return
	}
	s.commit(entries[:1], OpPopToRoot)
}

// Replace swaps the current route for route, keeping the stack depth.
func (s *RouteStack) Replace(route Route) {
	next := slices.Clone(s.load())
	next[len(next)-1] = route
	s.commit(next, OpReplace)
}

// ReplaceAll discards the whole history and makes route the new root.
func (s *RouteStack) ReplaceAll(route Route) {
	s.commit([]Route{route}, OpReplaceAll)
}

// SetRoot initializes the stack to a single root route.
// It has the same effect as ReplaceAll.
func (s *RouteStack) SetRoot(route Route) {
	s.commit([]Route{route}, OpSetRoot)
}
