// Package testing provides a headless widget testing framework.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestTodoList(t *testing.T) {
//	    tester := uselisttest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(TodoList{})
//
//	    tester.Tap(uselisttest.ByText("Add"))
//	    tester.Pump()
//
//	    if !tester.Find(uselisttest.ByText("1 todo")).Exists() {
//	        t.Error("expected '1 todo' text")
//	    }
//	}
//
// Tap and LongPress invoke the callbacks of the nearest GestureDetector
// enclosing the matched element. Pump drains dispatched callbacks and
// rebuilds every dirty element, exactly like a frame.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uselisttest "github.com/go-drift/uselist/pkg/testing"
package testing
