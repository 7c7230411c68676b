package router

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(routes []Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.ID()
	}
	return out
}

func TestRouteStackStartsWithRoot(t *testing.T) {
	home := NewRoute("home", nil)
	s := NewRouteStack(home)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, home, s.Current())
	assert.Equal(t, home, s.Root())
	assert.False(t, s.CanGoBack())
}

func TestRouteStackPopAtRootIsNoop(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	before := s.Entries()

	assert.False(t, s.Pop())
	assert.False(t, s.Pop())
	assert.Equal(t, before, s.Entries())
}

func TestRouteStackPushPopInverse(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	s.Push(NewRoute("list", nil))
	before := s.Entries()

	s.Push(NewRoute("details", map[string]any{"id": "1"}))
	assert.True(t, s.CanGoBack())
	assert.Equal(t, "details", s.Current().ID())

	require.True(t, s.Pop())
	assert.Equal(t, before, s.Entries())
}

func TestRouteStackPopToTopIsNoop(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	s.Push(NewRoute("details", map[string]any{"id": "1"}))
	before := s.Entries()

	assert.False(t, s.PopTo(NewRoute("details", map[string]any{"id": "other"})))
	assert.Equal(t, before, s.Entries())
}

func TestRouteStackPopToUnknownIsNoop(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	s.Push(NewRoute("details", nil))

	assert.False(t, s.PopTo(NewRoute("settings", nil)))
	assert.Equal(t, []string{"home", "details"}, ids(s.Entries()))
}

func TestRouteStackPopToMatchesTopmostOccurrence(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	first := NewRoute("details", map[string]any{"id": "1"})
	second := NewRoute("details", map[string]any{"id": "2"})
	s.Push(first)
	s.Push(NewRoute("list", nil))
	s.Push(second)
	s.Push(NewRoute("image", nil))

	require.True(t, s.PopTo(NewRoute("details", nil)))
	assert.Equal(t, []string{"home", "details", "list", "details"}, ids(s.Entries()))
	assert.Equal(t, second, s.Current())
}

func TestRouteStackPopToRoot(t *testing.T) {
	home := NewRoute("home", nil)
	s := NewRouteStack(home)
	s.PopToRoot()
	assert.Equal(t, 1, s.Len())

	s.Push(NewRoute("a", nil))
	s.Push(NewRoute("b", nil))
	s.PopToRoot()
	assert.Equal(t, []Route{home}, s.Entries())
	assert.False(t, s.CanGoBack())
}

func TestRouteStackReplace(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	s.Push(NewRoute("a", nil))

	b := NewRoute("b", nil)
	s.Replace(b)
	assert.Equal(t, []string{"home", "b"}, ids(s.Entries()))
	assert.Equal(t, b, s.Current())

	root := NewRoute("login", nil)
	single := NewRouteStack(NewRoute("splash", nil))
	single.Replace(root)
	assert.Equal(t, []Route{root}, single.Entries())
}

func TestRouteStackReplaceAllAndSetRoot(t *testing.T) {
	for depth := 0; depth < 5; depth++ {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			s := NewRouteStack(NewRoute("home", nil))
			for i := 0; i < depth; i++ {
				s.Push(NewRoute(fmt.Sprintf("r%d", i), nil))
			}

			r := NewRoute("fresh", nil)
			s.ReplaceAll(r)
			assert.Equal(t, []Route{r}, s.Entries())
			assert.Equal(t, r, s.Root())

			s.Push(NewRoute("x", nil))
			root := NewRoute("root", nil)
			s.SetRoot(root)
			assert.Equal(t, []Route{root}, s.Entries())
		})
	}
}

func TestRouteStackNeverEmpty(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	ops := []func(){
		func() { s.Pop() },
		func() { s.Push(NewRoute("a", nil)) },
		func() { s.PopToRoot() },
		func() { s.Pop() },
		func() { s.Replace(NewRoute("b", nil)) },
		func() { s.PopTo(NewRoute("b", nil)) },
		func() { s.Push(NewRoute("c", nil)) },
		func() { s.PopTo(NewRoute("b", nil)) },
		func() { s.ReplaceAll(NewRoute("d", nil)) },
		func() { s.Pop() },
	}
	for i := 0; i < 3; i++ {
		for _, op := range ops {
			op()
			require.GreaterOrEqual(t, s.Len(), 1)
		}
	}
}

func TestRouteStackEntriesIsSnapshot(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	s.Push(NewRoute("a", nil))

	snapshot := s.Entries()
	snapshot[1] = NewRoute("tampered", nil)
	s.Pop()
	s.Push(NewRoute("b", nil))

	assert.Equal(t, "tampered", snapshot[1].ID())
	assert.Equal(t, []string{"home", "b"}, ids(s.Entries()))
}

func TestRouteStackObserve(t *testing.T) {
	s := NewRouteStack(NewRoute("home", nil))
	var ops []Op
	s.Observe(func(c Change) { ops = append(ops, c.Op) })

	s.Push(NewRoute("a", nil))
	s.Pop()
	s.Pop() // ignored at root
	s.PopToRoot()
	s.Push(NewRoute("b", nil))
	s.PopTo(NewRoute("home", nil))
	s.Replace(NewRoute("c", nil))
	s.ReplaceAll(NewRoute("d", nil))
	s.SetRoot(NewRoute("e", nil))

	assert.Equal(t, []Op{OpPush, OpPop, OpPush, OpPopTo, OpReplace, OpReplaceAll, OpSetRoot}, ops)
}

func TestEndToEndStackScenario(t *testing.T) {
	home := NewRoute("home", nil)
	details1 := NewRoute("details", map[string]any{"id": "1"})
	details2 := NewRoute("details2", map[string]any{"id": "2"})
	s := NewRouteStack(home)

	s.Push(details1)
	assert.Equal(t, []Route{home, details1}, s.Entries())
	assert.True(t, s.CanGoBack())

	s.Push(details2)
	assert.Equal(t, []Route{home, details1, details2}, s.Entries())

	require.True(t, s.PopTo(NewRoute("details", nil)))
	assert.Equal(t, []Route{home, details1}, s.Entries())

	s.PopToRoot()
	assert.Equal(t, []Route{home}, s.Entries())
	assert.False(t, s.CanGoBack())
}
