package core

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets:
//
//	type TodoList struct {
//	    core.StatefulBase
//	}
//
//	func (TodoList) CreateState() core.State { return &todoListState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// ContainerBase provides default CreateElement and Key implementations for
// multi-child widgets. Embed it and implement [ContainerWidget.ChildWidgets].
type ContainerBase struct{}

// CreateElement returns a new ContainerElement.
func (ContainerBase) CreateElement() Element { return NewContainerElement() }

// Key returns nil (no key).
func (ContainerBase) Key() any { return nil }

// Stateful creates an inline stateful widget using closures.
// Use this for quick, self-contained UI fragments that don't need
// lifecycle hooks or StateBase features.
//
//	widget := core.Stateful(
//	    func() int { return 0 },
//	    func(count int, ctx core.BuildContext, setState func(func(int) int)) core.Widget {
//	        return widgets.GestureDetector{
//	            OnTap: func() {
//	                setState(func(c int) int { return c + 1 })
//	            },
//	            Child: widgets.Text{Content: fmt.Sprintf("Count: %d", count)},
//	        }
//	    },
//	)
//
// init runs once, when the widget is first mounted. build is taken from the
// most recent widget, so a parent may rebuild with new closures.
//
// For lists mutated in place, use [StatefulList] instead.
func Stateful[S any](
	init func() S,
	build func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) Widget {
	return &inlineStatefulWidget[S]{
		initFn:  init,
		buildFn: build,
	}
}

type inlineStatefulWidget[S any] struct {
	StatefulBase
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (w *inlineStatefulWidget[S]) CreateState() State {
	return &inlineStatefulState[S]{}
}

type inlineStatefulState[S any] struct {
	StateBase
	value S
}

func (s *inlineStatefulState[S]) widget() *inlineStatefulWidget[S] {
	return s.Element().Widget().(*inlineStatefulWidget[S])
}

func (s *inlineStatefulState[S]) InitState() {
	if init := s.widget().initFn; init != nil {
		s.value = init()
	}
}

func (s *inlineStatefulState[S]) Build(ctx BuildContext) Widget {
	return s.widget().buildFn(s.value, ctx, func(update func(S) S) {
		s.SetState(func() {
			s.value = update(s.value)
		})
	})
}
