package router

import (
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// Change is delivered to listeners after a mutation has been published.
// Listeners should re-read whatever state they render rather than rely on
// Change to describe it fully.
type Change struct {
	Op         Op
	TabID      string     // Owning tab, empty for non-tabbed stacks and modal changes
	Transition Transition // Visual direction of the change
	Version    uint64     // Notifier version after this change
}

// Listener receives change notifications.
type Listener func(Change)

type subscription struct {
	id uint64
	fn Listener
}

// Notifier fans change notifications out to subscribed listeners.
// Listeners run synchronously on the mutating goroutine, in subscription order.
// A nil *Notifier is valid and drops every notification.
type Notifier struct {
	mu        sync.Mutex
	listeners []subscription // replaced, never mutated in place
	nextID    atomic.Uint64
	version   atomic.Uint64
}

// NewNotifier creates a notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (n *Notifier) Subscribe(fn Listener) (unsubscribe func()) {
	if n == nil || fn == nil {
		return func() {}
	}
	id := n.nextID.Inc()

	n.mu.Lock()
	n.listeners = append(slices.Clip(n.listeners), subscription{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.listeners = slices.DeleteFunc(slices.Clone(n.listeners), func(s subscription) bool {
			return s.id == id
		})
	}
}

// Notify bumps the version and delivers c to every listener subscribed at the
// time of the call. Listeners may subscribe or unsubscribe from inside the callback.
func (n *Notifier) Notify(c Change) {
	if n == nil {
		return
	}
	if c.Transition == TransitionNone {
		c.Transition = c.Op.Transition()
	}
	c.Version = n.version.Inc()

	n.mu.Lock()
	listeners := n.listeners
	n.mu.Unlock()

	for _, s := range listeners {
		s.fn(c)
	}
}

// Version returns the number of changes delivered so far.
func (n *Notifier) Version() uint64 {
	if n == nil {
		return 0
	}
	return n.version.Load()
}

// Len returns the number of subscribed listeners.
func (n *Notifier) Len() int {
	if n == nil {
		return 0
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
