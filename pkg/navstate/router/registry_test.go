package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistryBuilder[string]().
		Register("home", "HomeScreen").
		RegisterDestination(detailsRoute{}, "DetailsScreen").
		Build()

	screen, ok := reg.Resolve(NewRoute("home", nil))
	require.True(t, ok)
	assert.Equal(t, "HomeScreen", screen)

	screen, ok = reg.Resolve(To(detailsRoute{ItemID: "1"}))
	require.True(t, ok)
	assert.Equal(t, "DetailsScreen", screen)

	screen, ok = reg.Resolve(NewRoute("unknown", nil))
	assert.False(t, ok)
	assert.Empty(t, screen)

	assert.True(t, reg.Has("details"))
	assert.Equal(t, []string{"details", "home"}, reg.IDs())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryIsImmutableAfterBuild(t *testing.T) {
	b := NewRegistryBuilder[int]().Register("a", 1)
	reg := b.Build()

	b.Register("a", 2).Register("b", 3)

	got, _ := reg.Resolve(NewRoute("a", nil))
	assert.Equal(t, 1, got)
	assert.False(t, reg.Has("b"))

	later := b.Build()
	got, _ = later.Resolve(NewRoute("a", nil))
	assert.Equal(t, 2, got)
}

func TestTypedRenderer(t *testing.T) {
	render := Typed(func(d detailsRoute) string {
		return "details:" + d.ItemID
	})

	reg := NewRegistryBuilder[func(Route) string]().
		Register("details", render).
		Build()

	fn, ok := reg.Resolve(To(detailsRoute{ItemID: "7"}))
	require.True(t, ok)
	assert.Equal(t, "details:7", fn(To(detailsRoute{ItemID: "7"})))

	assert.Panics(t, func() {
		fn(NewRoute("details", map[string]any{"id": "7"}))
	})
}
