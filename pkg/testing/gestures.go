package testing

import (
	"fmt"

	"github.com/go-drift/uselist/pkg/core"
	"github.com/go-drift/uselist/pkg/widgets"
)

// Tap invokes OnTap of the GestureDetector enclosing the first element
// matched by finder. The resulting rebuild happens on the next Pump.
func (t *WidgetTester) Tap(finder Finder) error {
	detector, err := t.gestureDetector("Tap", finder)
	if err != nil {
		return err
	}
	if detector.OnTap == nil {
		return fmt.Errorf("Tap: GestureDetector has no OnTap: %s", finder.Description())
	}
	detector.OnTap()
	return nil
}

// LongPress invokes OnLongPress of the GestureDetector enclosing the first
// element matched by finder.
func (t *WidgetTester) LongPress(finder Finder) error {
	detector, err := t.gestureDetector("LongPress", finder)
	if err != nil {
		return err
	}
	if detector.OnLongPress == nil {
		return fmt.Errorf("LongPress: GestureDetector has no OnLongPress: %s", finder.Description())
	}
	detector.OnLongPress()
	return nil
}

func (t *WidgetTester) gestureDetector(op string, finder Finder) (widgets.GestureDetector, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return widgets.GestureDetector{}, fmt.Errorf("%s: finder matched no elements: %s", op, finder.Description())
	}

	target := result.First()
	if detector, ok := target.Widget().(widgets.GestureDetector); ok {
		return detector, nil
	}
	ancestor := target.FindAncestor(func(e core.Element) bool {
		_, ok := e.Widget().(widgets.GestureDetector)
		return ok
	})
	if ancestor == nil {
		return widgets.GestureDetector{}, fmt.Errorf("%s: no GestureDetector encloses %s", op, finder.Description())
	}
	return ancestor.Widget().(widgets.GestureDetector), nil
}
