package layout

import (
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	l, err := Load(filepath.Join("testdata", "layout.toml"))
	require.NoError(t, err)

	require.Len(t, l.Tabs, 3)
	assert.Equal(t, "explore", l.InitialTabID())

	tabs := l.RouterTabs()
	assert.Equal(t, "item_list", tabs[1].InitialRoute.ID())
	assert.Equal(t, "tab.explore", tabs[1].Title)

	category, err := router.RequireParameter[string](tabs[1].InitialRoute, "category")
	require.NoError(t, err)
	assert.Equal(t, "all", category)

	page, ok := router.GetParameter[int64](tabs[1].InitialRoute, "page")
	require.True(t, ok)
	assert.Equal(t, int64(1), page)

	assert.Empty(t, tabs[2].Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout: read")
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("tabs = ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout: decode")
}

func TestParseRejectsBadTabs(t *testing.T) {
	_, err := Parse([]byte(`
[[tabs]]
route = "home"

[[tabs]]
id = "a"

[[tabs]]
id = "a"
route = "x"
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	assert.Contains(t, err.Error(), "tab 0")
	assert.Contains(t, err.Error(), "missing route")
	assert.Contains(t, err.Error(), `id "a" already used by tab 1`)
}

func TestParseRequiresTabs(t *testing.T) {
	_, err := Parse([]byte(`initial_tab = "home"`))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestInitialTabFallsBackToFirst(t *testing.T) {
	l, err := Parse([]byte(`
initial_tab = "nowhere"
[[tabs]]
id = "home"
route = "home"
`))
	require.NoError(t, err)
	assert.Equal(t, "home", l.InitialTabID())
}
