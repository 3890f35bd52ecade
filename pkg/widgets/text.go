package widgets

import "github.com/go-drift/uselist/pkg/core"

// Text displays a string.
type Text struct {
	core.StatelessBase
	// Content is the text string to display.
	Content string
	// ID optionally distinguishes this Text from its siblings, so a changed
	// ID at the same position replaces the element instead of updating it.
	ID any
}

// Key returns the Text's ID.
func (t Text) Key() any {
	return t.ID
}

// Build returns nil; Text is a leaf.
func (t Text) Build(ctx core.BuildContext) core.Widget {
	return nil
}
