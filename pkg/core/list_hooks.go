package core

// UseRerender returns a callback that schedules a rebuild of the state's
// element each time it is called. Several calls within one frame collapse
// into a single rebuild. Calls after disposal are ignored.
//
// It is the trigger every [List] created by [NewManagedList] and
// [StatefulList] is wired to.
func UseRerender(s stateBase) func() {
	base := s.state()
	return func() {
		base.SetState(nil)
	}
}

// ListSetter replaces a managed list wholesale.
//
// Both methods build a new [List] wired to the same rebuild trigger and
// schedule a rebuild; the previous List is left untouched.
type ListSetter[T any] interface {
	// Set replaces the list with one holding items.
	Set(items []T)
	// Update replaces the list with the result of fn applied to the current one.
	Update(fn func(prev *List[T]) []T)
}

// ManagedList holds a [List] for a state and rebuilds the state when the list
// is mutated in place or replaced.
//
// Create it in InitState and read it in Build:
//
//	type todoState struct {
//	    core.StateBase
//	    todos *core.ManagedList[string]
//	}
//
//	func (s *todoState) InitState() {
//	    s.todos = core.NewManagedList(s, "write docs")
//	}
//
//	func (s *todoState) Build(ctx core.BuildContext) core.Widget {
//	    todos, setTodos := s.todos.Use()
//	    return widgets.GestureDetector{
//	        OnTap: func() { todos.Push("review PR") },
//	        OnLongPress: func() { setTodos.Set(nil) },
//	        ...
//	    }
//	}
//
// Do not keep the *List across a Set or Update; read it again from the
// ManagedList.
type ManagedList[T any] struct {
	base     *StateBase
	rerender func()
	list     *List[T]
}

// NewManagedList creates a managed list holding items.
func NewManagedList[T any](s stateBase, items ...T) *ManagedList[T] {
	return NewManagedListFunc(s, func() []T { return items })
}

// NewManagedListFunc creates a managed list seeded by init, which is called
// exactly once, here. A nil init gives an empty list.
func NewManagedListFunc[T any](s stateBase, init func() []T) *ManagedList[T] {
	m := &ManagedList[T]{
		base:     s.state(),
		rerender: UseRerender(s),
	}
	var items []T
	if init != nil {
		items = init()
	}
	m.list = NewList(m.rerender, items...)
	return m
}

// List returns the current list.
func (m *ManagedList[T]) List() *List[T] {
	return m.list
}

// Use returns the current list and the setter that replaces it.
func (m *ManagedList[T]) Use() (*List[T], ListSetter[T]) {
	return m.list, m
}

// Set replaces the list with a new one holding items.
func (m *ManagedList[T]) Set(items []T) {
	m.list = NewList(m.rerender, items...)
	m.base.SetState(nil)
}

// Update replaces the list with a new one holding fn(current list).
func (m *ManagedList[T]) Update(fn func(prev *List[T]) []T) {
	m.list = NewList(m.rerender, fn(m.list)...)
	m.base.SetState(nil)
}

// StatefulList creates an inline stateful widget around a [List].
//
// init runs once, when the widget is first mounted; a nil init starts empty.
// build receives the current list, to mutate in place, and the setter that
// replaces it. Either one schedules a rebuild.
//
//	core.StatefulList(
//	    func() []string { return loadSavedTodos() },
//	    func(todos *core.List[string], ctx core.BuildContext, setTodos core.ListSetter[string]) core.Widget {
//	        return widgets.GestureDetector{
//	            OnTap: func() { todos.Push("new todo") },
//	            Child: widgets.Text{Content: fmt.Sprintf("%d todos", todos.Len())},
//	        }
//	    },
//	)
func StatefulList[T any](
	init func() []T,
	build func(list *List[T], ctx BuildContext, setList ListSetter[T]) Widget,
) Widget {
	return &inlineListWidget[T]{
		initFn:  init,
		buildFn: build,
	}
}

type inlineListWidget[T any] struct {
	StatefulBase
	initFn  func() []T
	buildFn func(list *List[T], ctx BuildContext, setList ListSetter[T]) Widget
}

func (w *inlineListWidget[T]) CreateState() State {
	return &inlineListState[T]{}
}

type inlineListState[T any] struct {
	StateBase
	managed *ManagedList[T]
}

func (s *inlineListState[T]) widget() *inlineListWidget[T] {
	return s.Element().Widget().(*inlineListWidget[T])
}

func (s *inlineListState[T]) InitState() {
	s.managed = NewManagedListFunc(s, s.widget().initFn)
}

func (s *inlineListState[T]) Build(ctx BuildContext) Widget {
	list, setList := s.managed.Use()
	return s.widget().buildFn(list, ctx, setList)
}
