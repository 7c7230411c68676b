package navstate

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeIDs(routes []router.Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.ID()
	}
	return out
}

func TestStackHostSnapshot(t *testing.T) {
	h := NewStackHost(router.NewRoute("home", nil))

	s := h.Snapshot()
	assert.Equal(t, uint64(0), s.Version)
	assert.Equal(t, "home", s.CurrentRoute().ID())
	assert.Empty(t, s.ActiveTabID)
	assert.Nil(t, h.Tabs())

	h.Navigator().Navigate(router.NewRoute("details", map[string]any{"id": "1"}))
	h.Navigator().PresentSheet(router.NewRoute("settings", nil), true)

	s2 := h.Snapshot()
	assert.Equal(t, uint64(2), s2.Version)
	assert.Equal(t, []string{"home", "details"}, routeIDs(s2.Entries))
	assert.True(t, h.CanGoBack())
	assert.Equal(t, 1, h.ModalStackDepth())

	// Earlier snapshots are not affected by later changes.
	assert.Equal(t, []string{"home"}, routeIDs(s.Entries))
	assert.Empty(t, s.Modals)
}

func TestListenersSeeUpdatedSnapshot(t *testing.T) {
	h := NewStackHost(router.NewRoute("home", nil))
	var seen []string
	unsubscribe := h.Subscribe(func(c router.Change) {
		seen = append(seen, c.Op.String()+":"+h.CurrentRoute().ID())
	})

	h.Navigator().Navigate(router.NewRoute("a", nil))
	h.Navigator().Replace(router.NewRoute("b", nil))
	h.Navigator().NavigateBack()
	h.Navigator().NavigateBack()
	unsubscribe()
	h.Navigator().Navigate(router.NewRoute("c", nil))

	assert.Equal(t, []string{"push:a", "replace:b", "pop:home"}, seen)
}

func TestTabHost(t *testing.T) {
	h, err := NewTabHost([]router.Tab{
		{ID: "A", InitialRoute: router.NewRoute("a_root", nil)},
		{ID: "B", InitialRoute: router.NewRoute("b_root", nil)},
	}, "A")
	require.NoError(t, err)

	var changes []router.Change
	h.Subscribe(func(c router.Change) { changes = append(changes, c) })

	nav := h.Navigator()
	nav.Navigate(router.NewRoute("a1", nil))
	nav.Navigate(router.NewRoute("a2", nil))
	h.SwitchTab("B")
	h.SwitchTab("C")

	assert.Equal(t, "B", h.ActiveTabID())
	assert.Equal(t, []string{"b_root"}, routeIDs(h.StackEntries()))

	h.ResetTab("A")
	a, _ := h.Tabs().Stack("A")
	assert.Equal(t, []string{"a_root"}, routeIDs(a.Entries()))
	assert.Equal(t, "B", h.ActiveTabID())

	require.Len(t, changes, 4)
	assert.Equal(t, router.OpSwitchTab, changes[2].Op)
	assert.Equal(t, router.OpResetTab, changes[3].Op)
	assert.Equal(t, "A", changes[3].TabID)
}

func TestTabHostSharesModalsAcrossTabs(t *testing.T) {
	h, err := NewTabHost([]router.Tab{
		{ID: "home", InitialRoute: router.NewRoute("home", nil)},
		{ID: "profile", InitialRoute: router.NewRoute("profile", nil)},
	}, "home")
	require.NoError(t, err)

	h.Navigator().PresentFullScreen(router.NewRoute("image_viewer", nil), true)
	h.SwitchTab("profile")

	modal, ok := h.CurrentModal()
	require.True(t, ok)
	assert.Equal(t, "image_viewer", modal.Route.ID())
	assert.Equal(t, router.ModalStyleFullScreen, modal.Style)
}

func TestNewTabHostWithoutTabs(t *testing.T) {
	_, err := NewTabHost(nil, "")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.ErrorIs(t, err, ErrNoTabs)
}

func TestLoadTabHost(t *testing.T) {
	h, err := LoadTabHost(filepath.Join("testdata", "layout.toml"))
	require.NoError(t, err)

	assert.Equal(t, "explore", h.ActiveTabID())
	assert.Equal(t, "item_list", h.CurrentRoute().ID())
	assert.Len(t, h.Tabs().Tabs(), 3)

	_, err = LoadTabHost(filepath.Join("testdata", "missing.toml"))
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "load_layout")
}

func TestResetAllTabsOnStackHost(t *testing.T) {
	h := NewStackHost(router.NewRoute("home", nil))
	h.Navigator().Navigate(router.NewRoute("a", nil))
	h.SwitchTab("ignored")
	h.ResetTab("ignored")

	h.ResetAllTabs()
	assert.Equal(t, []string{"home"}, routeIDs(h.StackEntries()))
}

func TestSnapshotConcurrentReaders(t *testing.T) {
	h := NewStackHost(router.NewRoute("home", nil))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				s := h.Snapshot()
				if len(s.Entries) == 0 {
					t.Error("observed empty stack")
					return
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		h.Navigator().Navigate(router.NewRoute("r", nil))
		if i%3 == 0 {
			h.Navigator().NavigateBackToRoot()
		}
	}
	close(stop)
	wg.Wait()
}
