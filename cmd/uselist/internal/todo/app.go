// Package todo implements the demo todo app replayed by the uselist CLI.
package todo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-drift/uselist/pkg/core"
	"github.com/go-drift/uselist/pkg/widgets"
)

// Item is one todo.
type Item struct {
	ID    uuid.UUID
	Title string
}

// NewItem creates an item with a fresh ID.
func NewItem(title string) Item {
	return Item{ID: uuid.New(), Title: title}
}

// NewItems creates one item per title, in order.
func NewItems(titles ...string) []Item {
	items := make([]Item, 0, len(titles))
	for _, title := range titles {
		items = append(items, NewItem(title))
	}
	return items
}

// String returns the title, so the list's default ordering sorts by title.
func (i Item) String() string {
	return i.Title
}

// Titles returns the titles of items, in order.
func Titles(items []Item) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}

// Controller gives code outside the widget tree access to a mounted App's
// list. It is attached when the App mounts and detached when it is disposed.
type Controller struct {
	todos  *core.ManagedList[Item]
	status *core.Managed[string]
	builds int
}

// NewController creates a detached controller.
func NewController() *Controller {
	return &Controller{}
}

// Attached reports whether an App is currently using the controller.
func (c *Controller) Attached() bool {
	return c.todos != nil
}

// Todos returns the current list, or nil when detached.
// The returned List is replaced by Replace; read it again afterwards.
func (c *Controller) Todos() *core.List[Item] {
	if c.todos == nil {
		return nil
	}
	return c.todos.List()
}

// Replace swaps the list for a new one holding titles.
func (c *Controller) Replace(titles []string) {
	if c.todos != nil {
		c.todos.Set(NewItems(titles...))
	}
}

// SetStatus updates the status line.
func (c *Controller) SetStatus(status string) {
	if c.status != nil {
		c.status.Set(status)
	}
}

// Builds returns how many times the attached App has built.
func (c *Controller) Builds() int {
	return c.builds
}

// Dispose detaches the controller.
func (c *Controller) Dispose() {
	c.todos = nil
	c.status = nil
}

// App renders a titled todo list.
//
// Tapping a row removes it, long-pressing a row moves it to the top, tapping
// "Add" appends a todo and long-pressing "Add" clears the list.
type App struct {
	core.StatefulBase
	Title   string
	Initial []string
	// Controller is optional; App creates its own when nil.
	Controller *Controller
}

func (a App) CreateState() core.State {
	return &appState{}
}

type appState struct {
	core.StateBase
	ctrl  *Controller
	added int
}

func (s *appState) InitState() {
	w := s.Element().Widget().(App)
	s.ctrl = core.UseController(s, func() *Controller {
		if w.Controller != nil {
			return w.Controller
		}
		return NewController()
	})
	s.ctrl.todos = core.NewManagedListFunc(s, func() []Item {
		return NewItems(w.Initial...)
	})
	s.ctrl.status = core.NewManaged(s, "ready")
}

func (s *appState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(App)
	s.ctrl.builds++
	todos := s.ctrl.todos.List()

	children := []core.Widget{
		widgets.Text{Content: fmt.Sprintf("%s: %d todos", w.Title, todos.Len())},
		widgets.Text{Content: s.ctrl.status.Value()},
	}
	for i, item := range todos.All() {
		children = append(children, widgets.GestureDetector{
			OnTap: func() { todos.Splice(i, core.DeleteN(1)) },
			OnLongPress: func() {
				moved := todos.Splice(i, core.DeleteN(1))
				todos.Unshift(moved...)
			},
			Child: widgets.Text{Content: rowLabel(i, item), ID: item.ID},
		})
	}
	children = append(children, widgets.GestureDetector{
		OnTap: func() {
			s.added++
			todos.Push(NewItem(fmt.Sprintf("todo %d", s.added)))
		},
		OnLongPress: func() { todos.Clear() },
		Child:       widgets.Text{Content: "Add"},
	})
	return widgets.Column{Children: children}
}

func rowLabel(i int, item Item) string {
	title := item.Title
	if title == "" {
		title = "(empty)"
	}
	return fmt.Sprintf("%d. %s", i+1, title)
}
