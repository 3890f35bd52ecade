// Package widgets provides the widgets used to describe list UIs.
//
// Widgets here are plain descriptions: they carry content and callbacks and
// build into the element tree, but have no layout or paint phase. Use struct
// literals to create them:
//
//	widgets.Column{Children: []core.Widget{
//	    widgets.Text{Content: "Groceries"},
//	    widgets.GestureDetector{
//	        OnTap: func() { items.Push("eggs") },
//	        Child: widgets.Text{Content: "Add"},
//	    },
//	}}
//
// Importing this package installs an error widget builder that renders a
// failed build as an [ErrorWidget].
package widgets
