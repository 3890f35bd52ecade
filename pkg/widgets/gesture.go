package widgets

import "github.com/go-drift/uselist/pkg/core"

// GestureDetector wraps a child widget with gesture callbacks.
//
//	GestureDetector{
//	    OnTap: func() { todos.Push("new todo") },
//	    Child: Text{Content: "Add"},
//	}
type GestureDetector struct {
	core.StatelessBase
	Child       core.Widget
	OnTap       func()
	OnLongPress func()
}

// Build returns the child.
func (g GestureDetector) Build(ctx core.BuildContext) core.Widget {
	return g.Child
}
