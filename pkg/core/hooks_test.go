package core

import "testing"

// MockDisposable for testing UseController
type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestOnDispose_Unregister(t *testing.T) {
	base := &StateBase{}
	called := false
	unregister := base.OnDispose(func() { called = true })

	unregister()
	base.Dispose()

	if called {
		t.Error("unregistered disposer should not run")
	}
}

func TestOnDispose_AfterDispose(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	called := false
	base.OnDispose(func() { called = true })

	if !called {
		t.Error("disposer registered after dispose should run immediately")
	}
}

func TestManaged_Value(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 42)

	if state.Value() != 42 {
		t.Errorf("Expected 42, got %d", state.Value())
	}
}

func TestManaged_Set(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 0)

	state.Set(100)

	if state.Value() != 100 {
		t.Errorf("Expected 100, got %d", state.Value())
	}
	if base.Generation() != 1 {
		t.Errorf("Expected 1 rebuild request, got %d", base.Generation())
	}
}

func TestManaged_Update(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 10)

	state.Update(func(v int) int { return v * 2 })

	if state.Value() != 20 {
		t.Errorf("Expected 20, got %d", state.Value())
	}
}

func TestManaged_StructType(t *testing.T) {
	type Todo struct {
		Title string
		Done  bool
	}

	base := &StateBase{}
	state := NewManaged(base, Todo{Title: "write docs"})

	state.Update(func(t Todo) Todo {
		t.Done = true
		return t
	})

	if !state.Value().Done {
		t.Errorf("Unexpected struct value: %+v", state.Value())
	}
}
