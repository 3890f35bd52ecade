// Package core provides the widget and element framework interfaces and lifecycle.
//
// Widgets are immutable descriptions of the UI. Elements instantiate widgets
// in a tree and rebuild them when marked dirty; a BuildOwner collects dirty
// elements and rebuilds them, parents first, once per frame.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: fmt.Sprintf("Count: %d", s.count)}
//	}
//
// SetState runs a function and schedules a rebuild. Managed wraps a single
// value so that Set and Update schedule the rebuild for you.
//
// # Lists
//
// List is a slice-like container that schedules a rebuild whenever it is
// mutated, so state can be edited in place:
//
//	func (s *todoState) InitState() {
//	    s.todos = core.NewManagedList(s, "write docs")
//	}
//
//	// in an event handler
//	s.todos.List().Push("review PR")     // rebuilds
//	s.todos.List().Sort(strings.Compare) // rebuilds
//	s.todos.Set([]string{"start over"})  // replaces the list, rebuilds
//
// StatefulList is the inline, closure-based equivalent, in the style of
// Stateful.
//
// # Hooks
//
// UseController ties a controller's lifetime to a state. UseRerender returns
// the bare rebuild trigger that lists are wired to.
package core
