// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"fmt"
	"strings"

	"github.com/go-drift/uselist/pkg/core"
	"github.com/go-drift/uselist/pkg/widgets"
)

// Checklist renders a list of items with controls that edit it in place.
//
// Tapping "Add" appends "item N", tapping an item removes it, tapping "Sort"
// sorts the items and long-pressing the header resets them to Initial.
type Checklist struct {
	core.StatefulBase
	Initial []string
	// OnBuild, when set, is called with the items of every build.
	OnBuild func(items []string)
}

func (c Checklist) CreateState() core.State {
	return &checklistState{}
}

type checklistState struct {
	core.StateBase
	items *core.ManagedList[string]
	added int
}

func (s *checklistState) InitState() {
	w := s.Element().Widget().(Checklist)
	s.items = core.NewManagedList(s, w.Initial...)
}

func (s *checklistState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(Checklist)
	items, setItems := s.items.Use()
	if w.OnBuild != nil {
		w.OnBuild(items.Items())
	}

	children := []core.Widget{
		widgets.GestureDetector{
			OnLongPress: func() { setItems.Set(w.Initial) },
			Child:       widgets.Text{Content: fmt.Sprintf("%d items", items.Len())},
		},
		widgets.GestureDetector{
			OnTap: func() {
				s.added++
				items.Push(fmt.Sprintf("item %d", s.added))
			},
			Child: widgets.Text{Content: "Add"},
		},
		widgets.GestureDetector{
			OnTap: func() { items.Sort(strings.Compare) },
			Child: widgets.Text{Content: "Sort"},
		},
	}
	for i, item := range items.All() {
		children = append(children, widgets.GestureDetector{
			OnTap: func() { items.Splice(i, core.DeleteN(1)) },
			Child: widgets.Text{Content: item, ID: item},
		})
	}
	return widgets.Column{Children: children}
}
