// Package layout loads tab configurations from TOML files.
//
// A layout lists the tabs of an application in display order, each with the
// route its stack starts at:
//
//	initial_tab = "home"
//
//	[[tabs]]
//	id = "home"
//	route = "home"
//	title = "tab.home"
//
//	[[tabs]]
//	id = "explore"
//	route = "item_list"
//	[tabs.params]
//	category = "all"
package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BrandonKowalski/navstate/pkg/navstate/internal"
	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
	"github.com/BurntSushi/toml"
)

// ErrInvalidLayout is wrapped by every validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the decoded form of a layout file.
type Layout struct {
	InitialTab string    `toml:"initial_tab"`
	Tabs       []TabSpec `toml:"tabs"`
}

// TabSpec configures one tab.
type TabSpec struct {
	ID     string         `toml:"id"`
	Route  string         `toml:"route"`  // Route ID of the tab's root
	Title  string         `toml:"title"`  // Title message ID; empty means the tab ID
	Params map[string]any `toml:"params"` // Parameters of the root route
}

// Parse decodes and validates a layout from TOML bytes.
func Parse(data []byte) (*Layout, error) {
	return decode(data, "")
}

// Load reads, decodes and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read: %w", err)
	}
	return decode(data, path)
}

func decode(data []byte, path string) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("layout: decode %s: %w", path, err)
		}
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	warnUndecoded(md, path)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func warnUndecoded(md toml.MetaData, path string) {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	internal.GetInternalLogger().Warn("Ignoring unknown layout keys", "path", path, "keys", strings.Join(keys, ","))
}

// Validate checks that there is at least one tab, that tab IDs are present
// and unique, and that every tab has a root route. All problems are reported.
// An initial tab that names no configured tab is not an error; the first
// tab is used instead.
func (l *Layout) Validate() error {
	if len(l.Tabs) == 0 {
		return fmt.Errorf("layout: %w: no tabs", ErrInvalidLayout)
	}

	var errs []error
	seen := make(map[string]int, len(l.Tabs))
	for i, tab := range l.Tabs {
		if tab.ID == "" {
			errs = append(errs, fmt.Errorf("layout: tab %d: %w: missing id", i, ErrInvalidLayout))
		} else if first, dup := seen[tab.ID]; dup {
			errs = append(errs, fmt.Errorf("layout: tab %d: %w: id %q already used by tab %d", i, ErrInvalidLayout, tab.ID, first))
		} else {
			seen[tab.ID] = i
		}
		if tab.Route == "" {
			errs = append(errs, fmt.Errorf("layout: tab %d: %w: missing route", i, ErrInvalidLayout))
		}
	}
	return errors.Join(errs...)
}

// RouterTabs converts the layout into router tabs.
func (l *Layout) RouterTabs() []router.Tab {
	tabs := make([]router.Tab, 0, len(l.Tabs))
	for _, spec := range l.Tabs {
		tabs = append(tabs, router.Tab{
			ID:           spec.ID,
			InitialRoute: router.NewRoute(spec.Route, spec.Params),
			Title:        spec.Title,
		})
	}
	return tabs
}

// InitialTabID returns the configured initial tab, falling back to the first tab.
func (l *Layout) InitialTabID() string {
	for _, tab := range l.Tabs {
		if tab.ID == l.InitialTab {
			return tab.ID
		}
	}
	if len(l.Tabs) == 0 {
		return ""
	}
	return l.Tabs[0].ID
}
