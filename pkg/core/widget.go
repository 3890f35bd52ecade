package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement returns the element that hosts this widget in the tree.
	CreateElement() Element
	// Key identifies the widget among its siblings. Widgets with different
	// keys are never updated in place.
	Key() any
}

// StatelessWidget builds its subtree purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that survives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// ContainerWidget lays out an ordered list of children.
type ContainerWidget interface {
	Widget
	ChildWidgets() []Widget
}

// State holds the mutable part of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// Disposable is implemented by controllers that release resources.
type Disposable interface {
	Dispose()
}

// BuildContext is the handle a widget receives while building.
// Every Element is a BuildContext.
type BuildContext interface {
	Widget() Widget
	Depth() int
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
}
