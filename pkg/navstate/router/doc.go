// Package router holds the navigation state core: route stacks, the modal
// stack, tab coordination and the route registry.
//
// Nothing in this package draws anything. A rendering layer reads the current
// route and stack contents, calls the mutation methods in response to input,
// and re-renders when a Notifier reports a Change.
//
// # Basic Usage
//
//	stack := router.NewRouteStack(router.NewRoute("home", nil))
//	nav := router.NewNavigator(router.FixedStack(stack), nil)
//
//	nav.Navigate(router.NewRoute("details", map[string]any{"id": "item_1"}))
//	nav.CanGoBack()    // true
//	nav.NavigateBack() // true, back on "home"
//	nav.NavigateBack() // false, the root is never popped
//
// # Tabs
//
// A TabCoordinator owns one RouteStack per tab. Its Navigator always targets
// the active tab, so code holding the navigator never needs to re-fetch it
// after a tab switch:
//
//	tabs, _ := router.NewTabCoordinator([]router.Tab{
//	    {ID: "home", InitialRoute: router.NewRoute("home", nil)},
//	    {ID: "profile", InitialRoute: router.NewRoute("profile", nil)},
//	}, "home", nil, notifier)
//
//	nav := tabs.Navigator()
//	nav.Navigate(router.NewRoute("details", nil)) // pushed onto "home"
//	tabs.SwitchTab("profile")
//	nav.CurrentRoute()                            // "profile"
//
// # Typed Routes
//
// Routes can be built from application types instead of string-keyed maps:
//
//	type DetailsRoute struct{ ItemID string }
//
//	func (DetailsRoute) RouteID() string { return "details" }
//
//	nav.Navigate(router.To(DetailsRoute{ItemID: "item_1"}))
//	d, ok := router.DestinationAs[DetailsRoute](nav.CurrentRoute())
//
// # Failure Policy
//
// Navigation requests that cannot apply (popping the root, popping to a route
// that is not in the stack, switching to an unknown tab, dismissing with no
// modal) return false or do nothing. Reading a required parameter that is
// missing or mistyped is the only loud failure; see RequireParameter and
// MustParameter.
package router
