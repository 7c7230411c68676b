package router

// StackProvider supplies the RouteStack a Navigator should operate on.
// It is consulted on every call, which is what lets one Navigator follow
// the active tab of a TabCoordinator.
type StackProvider interface {
	CurrentStack() *RouteStack
}

type fixedStack struct {
	stack *RouteStack
}

func (f fixedStack) CurrentStack() *RouteStack {
	return f.stack
}

// FixedStack adapts a single RouteStack into a StackProvider.
func FixedStack(stack *RouteStack) StackProvider {
	return fixedStack{stack: stack}
}

// Navigator is the handle calling code drives. It delegates route operations
// to the provider's current RouteStack and modal operations to the shared
// ModalStack.
type Navigator struct {
	stacks StackProvider
	modals *ModalStack
}

// NewNavigator creates a navigator over stacks and modals.
// A nil modals gets a fresh, private ModalStack.
func NewNavigator(stacks StackProvider, modals *ModalStack) *Navigator {
	if modals == nil {
		modals = NewModalStack()
	}
	return &Navigator{stacks: stacks, modals: modals}
}

func (n *Navigator) stack() *RouteStack {
	return n.stacks.CurrentStack()
}

// Navigate pushes route onto the current stack.
func (n *Navigator) Navigate(route Route) {
	n.stack().Push(route)
}

// NavigateBack pops the current stack. Returns false at the root.
func (n *Navigator) NavigateBack() bool {
	return n.stack().Pop()
}

// NavigateBackTo pops back to the topmost route matching route's ID.
func (n *Navigator) NavigateBackTo(route Route) bool {
	return n.stack().PopTo(route)
}

// NavigateBackToRoot pops the current stack to its root.
func (n *Navigator) NavigateBackToRoot() {
	n.stack().PopToRoot()
}

// Replace swaps the current route.
func (n *Navigator) Replace(route Route) {
	n.stack().Replace(route)
}

// ReplaceAll resets the current stack to a single route.
func (n *Navigator) ReplaceAll(route Route) {
	n.stack().ReplaceAll(route)
}

// PresentModal presents modal over everything.
func (n *Navigator) PresentModal(modal Modal) {
	n.modals.Present(modal)
}

// PresentSheet presents route as a sheet modal.
func (n *Navigator) PresentSheet(route Route, dismissible bool) {
	n.modals.Present(NewModal(route, ModalStyleSheet, dismissible))
}

// PresentFullScreen presents route as a full-screen modal.
func (n *Navigator) PresentFullScreen(route Route, dismissible bool) {
	n.modals.Present(NewModal(route, ModalStyleFullScreen, dismissible))
}

// DismissModal dismisses the top modal. Returns false if none is presented.
func (n *Navigator) DismissModal() bool {
	return n.modals.Dismiss()
}

// DismissAllModals dismisses every presented modal.
func (n *Navigator) DismissAllModals() {
	n.modals.DismissAll()
}

// Back handles a platform back action: the top modal is dismissed if there
// is one, otherwise the current stack is popped. Returns false if neither
// was possible.
func (n *Navigator) Back() bool {
	if n.modals.HasModal() {
		return n.modals.Dismiss()
	}
	return n.stack().Pop()
}

// CurrentRoute returns the top route of the current stack.
func (n *Navigator) CurrentRoute() Route {
	return n.stack().Current()
}

// CanGoBack reports whether NavigateBack would succeed.
func (n *Navigator) CanGoBack() bool {
	return n.stack().CanGoBack()
}

// Entries returns a snapshot of the current stack.
func (n *Navigator) Entries() []Route {
	return n.stack().Entries()
}

// CurrentModal returns the top modal, if any.
func (n *Navigator) CurrentModal() (Modal, bool) {
	return n.modals.Current()
}

// ModalDepth returns the number of presented modals.
func (n *Navigator) ModalDepth() int {
	return n.modals.Depth()
}

// Stack returns the RouteStack the navigator currently targets.
func (n *Navigator) Stack() *RouteStack {
	return n.stack()
}

// Modals returns the shared modal stack.
func (n *Navigator) Modals() *ModalStack {
	return n.modals
}
