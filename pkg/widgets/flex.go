package widgets

import "github.com/go-drift/uselist/pkg/core"

// Column arranges its children vertically, in order.
type Column struct {
	core.ContainerBase
	Children []core.Widget
}

// ChildWidgets returns the column's children.
func (c Column) ChildWidgets() []core.Widget {
	return c.Children
}

// ColumnOf creates a Column from the given children.
func ColumnOf(children ...core.Widget) Column {
	return Column{Children: children}
}
