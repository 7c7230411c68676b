package router

import (
	"context"
	"errors"
	"fmt"
)

// ScreenFunc runs a blocking screen for a route and returns its result.
// It suits immediate-mode front ends where each screen owns the render loop
// until the user acts.
type ScreenFunc func(ctx context.Context, route Route) (result any, err error)

// TransitionFunc is called after each screen completes to decide what happens
// next. It receives the route that was shown, the screen's result, and the
// navigator, which it uses to push, pop or present.
//
// Return false to exit the runner.
type TransitionFunc func(from Route, result any, nav *Navigator) (keepRunning bool)

// ErrNoTransition is returned by Run when no transition function is set.
var ErrNoTransition = errors.New("router: no transition function set")

// Runner drives a Navigator with blocking screens. On each iteration it shows
// the top modal if one is presented, otherwise the current route, and then
// hands the result to the transition function.
type Runner struct {
	screens    *Registry[ScreenFunc]
	navigator  *Navigator
	transition TransitionFunc
	fallback   ScreenFunc
}

// NewRunner creates a runner over the given screens and navigator.
func NewRunner(screens *Registry[ScreenFunc], nav *Navigator) *Runner {
	return &Runner{screens: screens, navigator: nav}
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Runner) OnTransition(fn TransitionFunc) *Runner {
	r.transition = fn
	return r
}

// OnMissing sets the screen shown for routes without a registered screen.
// Without one, Run fails on the first unregistered route.
func (r *Runner) OnMissing(fn ScreenFunc) *Runner {
	r.fallback = fn
	return r
}

// Visible returns the route that would be shown next.
func (r *Runner) Visible() Route {
	if modal, ok := r.navigator.CurrentModal(); ok {
		return modal.Route
	}
	return r.navigator.CurrentRoute()
}

// Run shows screens until the transition function returns false, a screen
// fails, or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := r.Visible()

		fn, ok := r.screens.Resolve(current)
		if !ok {
			if r.fallback == nil {
				return fmt.Errorf("router: screen %q not registered", current.ID())
			}
			fn = r.fallback
		}

		result, err := fn(ctx, current)
		if err != nil {
			return fmt.Errorf("router: screen %q error: %w", current.ID(), err)
		}

		if !r.transition(current, result, r.navigator) {
			return nil
		}
	}
}
