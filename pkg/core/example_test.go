package core_test

import (
	"fmt"
	"strings"

	"github.com/go-drift/uselist/pkg/core"
)

// This example shows a List counting the rebuilds its mutations request.
func ExampleList() {
	rebuilds := 0
	todos := core.NewList(func() { rebuilds++ }, "write docs")

	todos.Push("review PR", "fix flaky test")
	todos.Sort(strings.Compare)
	first, _ := todos.Shift()

	fmt.Println(first, todos.Items(), todos.Len())
	fmt.Println("rebuilds:", rebuilds)

	// Output:
	// fix flaky test [review PR write docs] 2
	// rebuilds: 3
}

// This example shows that Splice without a delete count removes the tail and
// ignores any values passed after it.
func ExampleList_Splice() {
	letters := core.NewList(nil, "a", "b", "c", "d")

	fmt.Println(letters.Splice(1, core.DeleteRest, "x", "y"), letters.Items())

	letters = core.NewList(nil, "a", "b", "c", "d")
	fmt.Println(letters.Splice(1, core.DeleteN(2), "x", "y"), letters.Items())

	// Output:
	// [b c d] [a]
	// [b c] [a x y d]
}

// This example shows the inline StatefulList widget, which hands every
// build the current list and its setter.
func ExampleStatefulList() {
	owner := core.NewBuildOwner()
	var add func(string)

	widget := core.StatefulList(
		func() []string { return []string{"milk"} },
		func(list *core.List[string], ctx core.BuildContext, setList core.ListSetter[string]) core.Widget {
			fmt.Println("build:", list.Items())
			add = func(item string) { list.Push(item) }
			return nil
		},
	)
	core.MountRoot(widget, owner)

	add("eggs")
	add("bread")
	owner.FlushBuild()

	// Output:
	// build: [milk]
	// build: [milk eggs bread]
}
