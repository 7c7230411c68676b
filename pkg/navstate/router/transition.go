package router

// Transition describes which way a navigation change moved, so an animation
// layer can pick a slide direction without diffing stacks itself.
type Transition int

const (
	TransitionNone     Transition = iota // Nothing visible moved (tab switch, modal change)
	TransitionForward                    // A new route was pushed
	TransitionBackward                   // One or more routes were popped
	TransitionReplace                    // The current route was swapped in place
)

// String returns a string representation of the transition.
func (t Transition) String() string {
	switch t {
	case TransitionForward:
		return "forward"
	case TransitionBackward:
		return "backward"
	case TransitionReplace:
		return "replace"
	default:
		return "none"
	}
}

// Op identifies the mutation that produced a Change.
type Op int

const (
	OpPush Op = iota + 1
	OpPop
	OpPopTo
	OpPopToRoot
	OpReplace
	OpReplaceAll
	OpSetRoot
	OpPresent
	OpDismiss
	OpDismissAll
	OpSwitchTab
	OpResetTab
	OpResetAllTabs
)

var opNames = map[Op]string{
	OpPush:         "push",
	OpPop:          "pop",
	OpPopTo:        "pop_to",
	OpPopToRoot:    "pop_to_root",
	OpReplace:      "replace",
	OpReplaceAll:   "replace_all",
	OpSetRoot:      "set_root",
	OpPresent:      "present",
	OpDismiss:      "dismiss",
	OpDismissAll:   "dismiss_all",
	OpSwitchTab:    "switch_tab",
	OpResetTab:     "reset_tab",
	OpResetAllTabs: "reset_all_tabs",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// Transition returns the visual direction implied by the operation.
func (o Op) Transition() Transition {
	switch o {
	case OpPush:
		return TransitionForward
	case OpPop, OpPopTo, OpPopToRoot, OpResetTab, OpResetAllTabs:
		return TransitionBackward
	case OpReplace, OpReplaceAll, OpSetRoot:
		return TransitionReplace
	default:
		return TransitionNone
	}
}

// IsModal reports whether the operation changed the modal stack.
func (o Op) IsModal() bool {
	return o == OpPresent || o == OpDismiss || o == OpDismissAll
}
