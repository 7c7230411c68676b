package router

import (
	"slices"

	"github.com/BrandonKowalski/navstate/pkg/navstate/internal"
	"go.uber.org/atomic"
)

// ModalStyle controls how the presentation layer draws a modal.
type ModalStyle int

const (
	ModalStyleSheet      ModalStyle = iota // Covers part of the screen, bottom-sheet style
	ModalStyleFullScreen                   // Covers the entire screen
)

func (s ModalStyle) String() string {
	switch s {
	case ModalStyleFullScreen:
		return "full_screen"
	default:
		return "sheet"
	}
}

// ParseModalStyle converts "sheet" or "full_screen" into a ModalStyle.
func ParseModalStyle(raw string) (ModalStyle, bool) {
	switch raw {
	case "sheet":
		return ModalStyleSheet, true
	case "full_screen", "fullscreen":
		return ModalStyleFullScreen, true
	}
	return ModalStyleSheet, false
}

// Modal is a route presented above the navigation stack.
type Modal struct {
	Route       Route
	Style       ModalStyle
	Dismissible bool // Advisory: whether tap-outside and close gestures should dismiss it
}

// NewModal creates a modal presentation of route.
func NewModal(route Route, style ModalStyle, dismissible bool) Modal {
	return Modal{Route: route, Style: style, Dismissible: dismissible}
}

// Sheet creates a dismissible sheet modal.
func Sheet(route Route) Modal {
	return NewModal(route, ModalStyleSheet, true)
}

// FullScreen creates a dismissible full-screen modal.
func FullScreen(route Route) Modal {
	return NewModal(route, ModalStyleFullScreen, true)
}

// ModalStack holds the modals presented over the navigation stack.
// Only the top modal is visible; the ones below are kept until exposed.
// Unlike RouteStack it may be empty.
type ModalStack struct {
	entries atomic.Pointer[[]Modal]
	observe Listener
}

// NewModalStack creates an empty modal stack.
func NewModalStack() *ModalStack {
	m := &ModalStack{}
	m.entries.Store(&[]Modal{})
	return m
}

// Observe sets the listener called after every state-changing operation.
func (m *ModalStack) Observe(fn Listener) {
	m.observe = fn
}

func (m *ModalStack) load() []Modal {
	return *m.entries.Load()
}

func (m *ModalStack) commit(next []Modal, op Op) {
	m.entries.Store(&next)
	if m.observe != nil {
		m.observe(Change{Op: op, Transition: TransitionNone})
	}
}

// Current returns the top modal, if any.
func (m *ModalStack) Current() (Modal, bool) {
	entries := m.load()
	if len(entries) == 0 {
		return Modal{}, false
	}
	return entries[len(entries)-1], true
}

// HasModal returns true if at least one modal is presented.
func (m *ModalStack) HasModal() bool {
	return len(m.load()) > 0
}

// Depth returns the number of presented modals.
func (m *ModalStack) Depth() int {
	return len(m.load())
}

// Entries returns a copy of the presented modals, bottom first.
func (m *ModalStack) Entries() []Modal {
	return slices.Clone(m.load())
}

// Present shows modal on top of any modals already presented.
func (m *ModalStack) Present(modal Modal) {
	m.commit(append(slices.Clip(m.load()), modal), OpPresent)
}

// Dismiss removes the top modal regardless of its Dismissible flag.
// Returns false if no modal is presented.
func (m *ModalStack) Dismiss() bool {
	entries := m.load()
	if len(entries) == 0 {
		internal.GetInternalLogger().Debug("Ignoring dismiss with no modal presented")
		return false
	}
	m.commit(entries[:len(entries)-1], OpDismiss)
	return true
}

// DismissInteractive removes the top modal only if it is Dismissible.
// Presentation layers call this for tap-outside and swipe gestures.
func (m *ModalStack) DismissInteractive() bool {
	top, ok := m.Current()
	if !ok || !top.Dismissible {
		return false
	}
	return m.Dismiss()
}

// DismissAll removes every modal.
func (m *ModalStack) DismissAll() {
	if len(m.load()) == 0 {
		return
	}
	m.commit([]Modal{}, OpDismissAll)
}
