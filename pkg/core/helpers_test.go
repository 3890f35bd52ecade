package core

import (
	"testing"
)

// --- StatelessBase tests ---

type testStatelessBaseWidget struct {
	StatelessBase
	label string
}

func (w testStatelessBaseWidget) Build(ctx BuildContext) Widget { return nil }

func TestStatelessBase_SatisfiesInterface(t *testing.T) {
	var w any = testStatelessBaseWidget{label: "hello"}
	if _, ok := w.(StatelessWidget); !ok {
		t.Error("widget embedding StatelessBase should satisfy StatelessWidget")
	}
}

func TestStatelessBase_CreateElement(t *testing.T) {
	elem := testStatelessBaseWidget{}.CreateElement()
	if _, ok := elem.(*StatelessElement); !ok {
		t.Errorf("expected *StatelessElement, got %T", elem)
	}
}

func TestStatelessBase_KeyOverride(t *testing.T) {
	w := testLeaf{key: "custom"}
	if w.Key() != "custom" {
		t.Errorf("expected key 'custom', got %v", w.Key())
	}
	if (testStatelessBaseWidget{}).Key() != nil {
		t.Error("expected nil default key")
	}
}

// --- StatefulBase tests ---

type testStatefulBaseWidget struct {
	StatefulBase
}

func (testStatefulBaseWidget) CreateState() State { return &testState{} }

func TestStatefulBase_SatisfiesInterface(t *testing.T) {
	var w any = testStatefulBaseWidget{}
	if _, ok := w.(StatefulWidget); !ok {
		t.Error("widget embedding StatefulBase should satisfy StatefulWidget")
	}
	if _, ok := (testStatefulBaseWidget{}).CreateElement().(*StatefulElement); !ok {
		t.Error("expected *StatefulElement")
	}
}

// --- ContainerBase tests ---

func TestContainerBase_SatisfiesInterface(t *testing.T) {
	var w any = testContainer{}
	if _, ok := w.(ContainerWidget); !ok {
		t.Error("widget embedding ContainerBase should satisfy ContainerWidget")
	}
	if _, ok := (testContainer{}).CreateElement().(*ContainerElement); !ok {
		t.Error("expected *ContainerElement")
	}
}

// --- Stateful tests ---

func TestStateful_InitRunsOnce(t *testing.T) {
	owner := NewBuildOwner()
	inits := 0
	var seen []int
	var increment func()

	widget := Stateful(
		func() int {
			inits++
			return 10
		},
		func(count int, ctx BuildContext, setState func(func(int) int)) Widget {
			seen = append(seen, count)
			increment = func() { setState(func(c int) int { return c + 1 }) }
			return nil
		},
	)
	MountRoot(widget, owner)

	increment()
	owner.FlushBuild()
	increment()
	increment()
	owner.FlushBuild()

	if inits != 1 {
		t.Errorf("init called %d times, want 1", inits)
	}
	want := []int{10, 11, 13}
	if len(seen) != len(want) {
		t.Fatalf("builds saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("build %d saw %d, want %d", i, seen[i], want[i])
		}
	}
}
