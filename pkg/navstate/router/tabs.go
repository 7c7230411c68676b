package router

import (
	"github.com/BrandonKowalski/navstate/pkg/navstate/internal"
	"go.uber.org/atomic"
)

// Tab is the static configuration of one independently navigated context.
type Tab struct {
	ID           string
	InitialRoute Route
	Title        string // Message ID or label for the tab bar; empty means use ID
}

// TabCoordinator owns one RouteStack per tab and tracks which tab is active.
//
// Stacks are created once, at construction, and persist across tab switches:
// switching away from a tab and back resumes it exactly where it was left.
// Unknown tab IDs passed to SwitchTab or ResetTab are ignored.
type TabCoordinator struct {
	tabs      []Tab
	stacks    map[string]*RouteStack
	active    atomic.String
	modals    *ModalStack
	notifier  *Notifier
	navigator *Navigator
}

// NewTabCoordinator creates a coordinator for tabs. initialTabID falls back to
// the first tab when it is not configured. Tabs with duplicate IDs after the
// first are dropped. modals is the shared overlay stack; nil creates one that
// reports to notifier. notifier may be nil.
func NewTabCoordinator(tabs []Tab, initialTabID string, modals *ModalStack, notifier *Notifier) (*TabCoordinator, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	if modals == nil {
		modals = NewModalStack()
		modals.Observe(notifier.Notify)
	}

	c := &TabCoordinator{
		tabs:     make([]Tab, 0, len(tabs)),
		stacks:   make(map[string]*RouteStack, len(tabs)),
		modals:   modals,
		notifier: notifier,
	}

	for _, tab := range tabs {
		if _, exists := c.stacks[tab.ID]; exists {
			internal.GetInternalLogger().Warn("Dropping duplicate tab", "tab", tab.ID)
			continue
		}
		stack := NewRouteStack(tab.InitialRoute)
		tabID := tab.ID
		stack.Observe(func(change Change) {
			change.TabID = tabID
			c.notifier.Notify(change)
		})
		c.tabs = append(c.tabs, tab)
		c.stacks[tab.ID] = stack
	}

	if _, ok := c.stacks[initialTabID]; ok {
		c.active.Store(initialTabID)
	} else {
		c.active.Store(c.tabs[0].ID)
	}

	c.navigator = NewNavigator(c, modals)
	return c, nil
}

// Tabs returns the configured tabs in order.
func (c *TabCoordinator) Tabs() []Tab {
	out := make([]Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}

// ActiveTabID returns the ID of the active tab.
func (c *TabCoordinator) ActiveTabID() string {
	return c.active.Load()
}

// ActiveTab returns the active tab's configuration.
func (c *TabCoordinator) ActiveTab() Tab {
	tab, _ := c.tab(c.active.Load())
	return tab
}

func (c *TabCoordinator) tab(id string) (Tab, bool) {
	for _, tab := range c.tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return Tab{}, false
}

// HasTab reports whether id names a configured tab.
func (c *TabCoordinator) HasTab(id string) bool {
	_, ok := c.stacks[id]
	return ok
}

// CurrentStack returns the active tab's stack. It implements StackProvider.
func (c *TabCoordinator) CurrentStack() *RouteStack {
	return c.stacks[c.active.Load()]
}

// Stack returns the stack for a tab.
func (c *TabCoordinator) Stack(id string) (*RouteStack, bool) {
	stack, ok := c.stacks[id]
	return stack, ok
}

// Modals returns the shared modal stack.
func (c *TabCoordinator) Modals() *ModalStack {
	return c.modals
}

// Navigator returns the navigator bound to whichever tab is active.
// The same instance is returned for the coordinator's whole lifetime.
func (c *TabCoordinator) Navigator() *Navigator {
	return c.navigator
}

// SwitchTab makes id the active tab. Unknown IDs are ignored.
// No stack is modified.
func (c *TabCoordinator) SwitchTab(id string) {
	if !c.HasTab(id) {
		internal.GetInternalLogger().Debug("Ignoring switch to unknown tab", "tab", id)
		return
	}
	if c.active.Swap(id) == id {
		return
	}
	c.notifier.Notify(Change{Op: OpSwitchTab, TabID: id})
}

// SwitchOrPopToRoot switches to id, or pops it to its root if it is already active.
// This is the usual behavior of re-selecting the current item in a tab bar.
func (c *TabCoordinator) SwitchOrPopToRoot(id string) {
	if c.active.Load() == id {
		c.stacks[id].PopToRoot()
		return
	}
	c.SwitchTab(id)
}

// ResetTab discards a tab's history, leaving only its initial route.
// The active tab does not change. Unknown IDs are ignored.
func (c *TabCoordinator) ResetTab(id string) {
	tab, ok := c.tab(id)
	if !ok {
		internal.GetInternalLogger().Debug("Ignoring reset of unknown tab", "tab", id)
		return
	}
	c.stacks[id].commit([]Route{tab.InitialRoute}, OpResetTab)
}

// ResetAllTabs resets every tab and emits a single change.
func (c *TabCoordinator) ResetAllTabs() {
	for _, tab := range c.tabs {
		c.stacks[tab.ID].store([]Route{tab.InitialRoute})
	}
	c.notifier.Notify(Change{Op: OpResetAllTabs})
}
