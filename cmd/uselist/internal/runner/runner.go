// Package runner replays a scripted sequence of list operations against a
// headless todo app, pumping a frame after every step.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-drift/uselist/cmd/uselist/internal/config"
	"github.com/go-drift/uselist/cmd/uselist/internal/todo"
	"github.com/go-drift/uselist/pkg/core"
	"github.com/go-drift/uselist/pkg/errors"
	"github.com/go-drift/uselist/pkg/widgets"
)

// Result describes one replayed step.
type Result struct {
	Index   int
	Op      string
	Summary string
	// Rebuilt reports whether the step caused the app to rebuild.
	Rebuilt bool
	Rows    []string
}

// Runner owns a mounted todo app and its build owner.
type Runner struct {
	owner  *core.BuildOwner
	root   core.Element
	ctrl   *todo.Controller
	logger *slog.Logger
}

// New mounts app and runs its first frame. A nil logger discards output.
func New(app todo.App, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if app.Controller == nil {
		app.Controller = todo.NewController()
	}
	owner := core.NewBuildOwner()
	r := &Runner{
		owner:  owner,
		root:   core.MountRoot(app, owner),
		ctrl:   app.Controller,
		logger: logger,
	}
	owner.FlushBuild()
	return r
}

// Controller returns the mounted app's controller.
func (r *Runner) Controller() *todo.Controller {
	return r.ctrl
}

// Pump rebuilds dirty elements and reports whether anything was rebuilt.
func (r *Runner) Pump() bool {
	if !r.owner.NeedsWork() {
		return false
	}
	r.owner.FlushBuild()
	return true
}

// Rows returns the rendered row labels in tree order.
func (r *Runner) Rows() []string {
	var rows []string
	var walk func(core.Element)
	walk = func(e core.Element) {
		if text, ok := e.Widget().(widgets.Text); ok && text.ID != nil {
			rows = append(rows, text.Content)
		}
		e.VisitChildren(func(child core.Element) bool {
			walk(child)
			return true
		})
	}
	if r.root != nil {
		walk(r.root)
	}
	return rows
}

// Close unmounts the app, detaching its controller.
func (r *Runner) Close() {
	if r.root != nil {
		r.root.Unmount()
		r.root = nil
	}
}

// Run replays script in order and stops at the first failing step or when
// ctx is done.
func (r *Runner) Run(ctx context.Context, script []config.Step) ([]Result, error) {
	started := time.Now()
	results := make([]Result, 0, len(script))
	for i, step := range script {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := r.Step(i, step)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	r.logger.Info("script finished",
		"steps", len(results),
		"builds", r.ctrl.Builds(),
		"elapsed", time.Since(started),
	)
	return results, nil
}

// Step applies one step, updates the status line and pumps a frame.
// Panics raised by the list (a negative length, an index out of range) are
// reported and returned as script errors.
func (r *Runner) Step(i int, step config.Step) (result Result, err error) {
	result = Result{Index: i, Op: step.Op}
	if !r.ctrl.Attached() {
		return result, &errors.FrameworkError{
			Op:        "runner.Step",
			Kind:      errors.KindScript,
			Err:       fmt.Errorf("step %d (%s): app is not mounted", i, step.Op),
			Timestamp: time.Now(),
		}
	}

	func() {
		defer errors.RecoverWithCallback("runner.Step", func(v any) {
			err = &errors.FrameworkError{
				Op:        "runner.Step",
				Kind:      errors.KindScript,
				Err:       fmt.Errorf("step %d (%s): %v", i, step.Op, v),
				Timestamp: time.Now(),
			}
		})
		result.Summary, err = r.apply(step)
	}()
	if err != nil {
		// Keep the tree consistent with whatever the list holds now.
		r.Pump()
		return result, err
	}

	result.Rebuilt = r.owner.NeedsWork()
	r.ctrl.SetStatus(fmt.Sprintf("%s: %s", step.Op, result.Summary))
	r.Pump()
	result.Rows = r.Rows()

	r.logger.Debug("step applied",
		"step", i,
		"op", step.Op,
		"result", result.Summary,
		"rebuilt", result.Rebuilt,
		"rows", strings.Join(result.Rows, ", "),
	)
	return result, nil
}

func (r *Runner) apply(step config.Step) (string, error) {
	if step.Op == "replace" {
		r.ctrl.Replace(step.Values)
		return fmt.Sprintf("length=%d", len(step.Values)), nil
	}
	return Apply(r.ctrl.Todos(), step)
}

// Apply performs step on list and returns a short summary of the outcome.
// The "replace" op needs the list's setter and is handled by Runner.
func Apply(list *core.List[todo.Item], step config.Step) (string, error) {
	switch step.Op {
	case "push":
		return fmt.Sprintf("length=%d", list.Push(todo.NewItems(step.Values...)...)), nil
	case "unshift":
		return fmt.Sprintf("length=%d", list.Unshift(todo.NewItems(step.Values...)...)), nil
	case "pop":
		return removed(list.Pop()), nil
	case "shift":
		return removed(list.Shift()), nil
	case "splice":
		count := core.DeleteRest
		if step.Count != nil {
			count = core.DeleteN(*step.Count)
		}
		deleted := list.Splice(deref(step.Start), count, todo.NewItems(step.Values...)...)
		return fmt.Sprintf("removed %q", todo.Titles(deleted)), nil
	case "sort":
		list.Sort(compareFor(step.Order))
		return "sorted", nil
	case "reverse":
		list.Reverse()
		return "reversed", nil
	case "fill":
		list.Fill(todo.NewItem(step.Value), bounds(step)...)
		return fmt.Sprintf("filled with %q", step.Value), nil
	case "copyWithin":
		list.CopyWithin(step.Target, deref(step.Start), optional(step.End)...)
		return "copied", nil
	case "setLength":
		return fmt.Sprintf("length=%d", list.SetLength(step.Length)), nil
	case "clear":
		list.Clear()
		return "cleared", nil
	case "set":
		list.Set(step.Index, todo.NewItem(step.Value))
		return fmt.Sprintf("set %d to %q", step.Index, step.Value), nil
	default:
		return "", &errors.FrameworkError{
			Op:        "runner.Apply",
			Kind:      errors.KindScript,
			Err:       fmt.Errorf("unknown op %q", step.Op),
			Timestamp: time.Now(),
		}
	}
}

func removed(item todo.Item, ok bool) string {
	if !ok {
		return "empty"
	}
	return fmt.Sprintf("removed %q", item.Title)
}

// compareFor returns the comparator for a sort order. An empty order keeps
// the list's default text ordering.
func compareFor(order string) func(a, b todo.Item) int {
	switch order {
	case "asc":
		return func(a, b todo.Item) int { return strings.Compare(a.Title, b.Title) }
	case "desc":
		return func(a, b todo.Item) int { return strings.Compare(b.Title, a.Title) }
	default:
		return nil
	}
}

// bounds turns optional start/end into Fill's variadic bounds.
func bounds(step config.Step) []int {
	switch {
	case step.End != nil:
		return []int{deref(step.Start), *step.End}
	case step.Start != nil:
		return []int{*step.Start}
	default:
		return nil
	}
}

func optional(p *int) []int {
	if p == nil {
		return nil
	}
	return []int{*p}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
