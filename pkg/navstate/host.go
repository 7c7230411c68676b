package navstate

import (
	"slices"

	"github.com/BrandonKowalski/navstate/pkg/navstate/internal"
	"github.com/BrandonKowalski/navstate/pkg/navstate/layout"
	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
	"go.uber.org/atomic"
)

// State is an immutable snapshot of everything a renderer needs.
type State struct {
	Version     uint64         // Increments once per observable change
	ActiveTabID string         // Empty for hosts without tabs
	Entries     []router.Route // Active stack, root first
	Modals      []router.Modal // Presented modals, bottom first
}

// CurrentRoute returns the top of the active stack.
func (s *State) CurrentRoute() router.Route {
	return s.Entries[len(s.Entries)-1]
}

// CanGoBack reports whether the active stack has a route below the current one.
func (s *State) CanGoBack() bool {
	return len(s.Entries) > 1
}

// CurrentModal returns the top modal, if any.
func (s *State) CurrentModal() (router.Modal, bool) {
	if len(s.Modals) == 0 {
		return router.Modal{}, false
	}
	return s.Modals[len(s.Modals)-1], true
}

// Host owns the navigation state of one application: either a single route
// stack or a set of tabs, plus the modal stack shared by all of them.
//
// Mutations go through Navigator (and SwitchTab/ResetTab for tabbed hosts)
// and must be serialized by the caller. Snapshot and the query methods may be
// called from any goroutine.
type Host struct {
	notifier *router.Notifier
	modals   *router.ModalStack
	tabs     *router.TabCoordinator
	stack    *router.RouteStack
	nav      *router.Navigator
	state    atomic.Pointer[State]
}

// NewStackHost creates a host with a single route stack rooted at root.
func NewStackHost(root router.Route) *Host {
	h := newHost()
	h.stack = router.NewRouteStack(root)
	h.stack.Observe(h.notifier.Notify)
	h.nav = router.NewNavigator(router.FixedStack(h.stack), h.modals)
	h.publish(0)
	return h
}

// NewTabHost creates a host with one route stack per tab.
func NewTabHost(tabs []router.Tab, initialTabID string) (*Host, error) {
	h := newHost()
	coordinator, err := router.NewTabCoordinator(tabs, initialTabID, h.modals, h.notifier)
	if err != nil {
		return nil, NewConfigError("build_tabs", "", err)
	}
	h.tabs = coordinator
	h.nav = coordinator.Navigator()
	h.publish(0)
	return h, nil
}

// NewTabHostFromLayout creates a tabbed host from a parsed layout.
func NewTabHostFromLayout(l *layout.Layout) (*Host, error) {
	return NewTabHost(l.RouterTabs(), l.InitialTabID())
}

// LoadTabHost reads a layout file and creates a tabbed host from it.
func LoadTabHost(path string) (*Host, error) {
	l, err := layout.Load(path)
	if err != nil {
		return nil, NewConfigError("load_layout", path, err)
	}
	return NewTabHostFromLayout(l)
}

func newHost() *Host {
	h := &Host{
		notifier: router.NewNotifier(),
		modals:   router.NewModalStack(),
	}
	h.modals.Observe(h.notifier.Notify)
	// Subscribed first so every other listener already sees the new snapshot.
	h.notifier.Subscribe(func(c router.Change) {
		internal.GetInternalLogger().Debug("Navigation state changed",
			"op", c.Op.String(), "tab", c.TabID, "transition", c.Transition.String(), "version", c.Version)
		h.publish(c.Version)
	})
	return h
}

func (h *Host) publish(version uint64) {
	s := &State{
		Version: version,
		Entries: h.nav.Entries(),
		Modals:  h.modals.Entries(),
	}
	if h.tabs != nil {
		s.ActiveTabID = h.tabs.ActiveTabID()
	}
	h.state.Store(s)
}

// Snapshot returns the state as of the most recent change.
// The returned value must not be modified.
func (h *Host) Snapshot() *State {
	return h.state.Load()
}

// Subscribe registers fn to run after every change. The snapshot is already
// updated when fn runs.
func (h *Host) Subscribe(fn router.Listener) (unsubscribe func()) {
	return h.notifier.Subscribe(fn)
}

// Navigator returns the handle used to mutate the active stack and the modals.
// For tabbed hosts it follows the active tab.
func (h *Host) Navigator() *router.Navigator {
	return h.nav
}

// Tabs returns the tab coordinator, or nil for single-stack hosts.
func (h *Host) Tabs() *router.TabCoordinator {
	return h.tabs
}

// Modals returns the shared modal stack.
func (h *Host) Modals() *router.ModalStack {
	return h.modals
}

// SwitchTab activates a tab. Unknown IDs and single-stack hosts are ignored.
func (h *Host) SwitchTab(id string) {
	if h.tabs == nil {
		return
	}
	h.tabs.SwitchTab(id)
}

// ResetTab resets one tab to its initial route. Unknown IDs and
// single-stack hosts are ignored.
func (h *Host) ResetTab(id string) {
	if h.tabs == nil {
		return
	}
	h.tabs.ResetTab(id)
}

// ResetAllTabs resets every tab to its initial route. For single-stack
// hosts it pops to the root.
func (h *Host) ResetAllTabs() {
	if h.tabs == nil {
		h.stack.PopToRoot()
		return
	}
	h.tabs.ResetAllTabs()
}

// CurrentRoute returns the top route of the active stack.
func (h *Host) CurrentRoute() router.Route {
	return h.Snapshot().CurrentRoute()
}

// CanGoBack reports whether the active stack can pop.
func (h *Host) CanGoBack() bool {
	return h.Snapshot().CanGoBack()
}

// StackEntries returns a copy of the active stack, root first.
func (h *Host) StackEntries() []router.Route {
	return slices.Clone(h.Snapshot().Entries)
}

// CurrentModal returns the top modal, if any.
func (h *Host) CurrentModal() (router.Modal, bool) {
	return h.Snapshot().CurrentModal()
}

// ModalStackDepth returns the number of presented modals.
func (h *Host) ModalStackDepth() int {
	return len(h.Snapshot().Modals)
}

// ActiveTabID returns the active tab, or "" for single-stack hosts.
func (h *Host) ActiveTabID() string {
	return h.Snapshot().ActiveTabID
}
