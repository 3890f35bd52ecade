package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/go-drift/uselist/cmd/uselist/internal/config"
	"github.com/go-drift/uselist/cmd/uselist/internal/todo"
	"github.com/go-drift/uselist/pkg/core"
	"github.com/go-drift/uselist/pkg/errors"
)

func intPtr(n int) *int { return &n }

// silence swaps the global error handler for one that records panics.
func silence(t *testing.T) *[]*errors.PanicError {
	t.Helper()
	var panics []*errors.PanicError
	errors.SetHandler(recordingHandler{panics: &panics})
	t.Cleanup(func() { errors.SetHandler(nil) })
	return &panics
}

type recordingHandler struct {
	panics *[]*errors.PanicError
}

func (h recordingHandler) HandleError(*errors.FrameworkError) {}
func (h recordingHandler) HandlePanic(err *errors.PanicError) {
	*h.panics = append(*h.panics, err)
}
func (h recordingHandler) HandleBuildError(*errors.BuildError) {}

func newRunner(t *testing.T, items ...string) *Runner {
	t.Helper()
	r := New(todo.App{Title: "t", Initial: items}, nil)
	t.Cleanup(r.Close)
	return r
}

func titles(r *Runner) []string {
	return todo.Titles(r.Controller().Todos().Items())
}

func TestRun_Script(t *testing.T) {
	r := newRunner(t, "milk", "eggs")

	results, err := r.Run(context.Background(), []config.Step{
		{Op: "push", Values: []string{"bread"}},
		{Op: "unshift", Values: []string{"tea"}},
		{Op: "sort", Order: "asc"},
		{Op: "pop"},
		{Op: "splice", Start: intPtr(1), Count: intPtr(1), Values: []string{"jam"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 5 {
		t.Fatalf("got %d results", len(results))
	}
	if got, want := titles(r), []string{"bread", "jam", "milk"}; !slices.Equal(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
	if got := results[3].Summary; got != `removed "tea"` {
		t.Errorf("pop summary = %q", got)
	}
	if got, want := results[4].Rows, []string{"1. bread", "2. jam", "3. milk"}; !slices.Equal(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
	for _, res := range results {
		if !res.Rebuilt {
			t.Errorf("step %d (%s) did not rebuild", res.Index, res.Op)
		}
	}
}

func TestStep_OneRebuildPerStep(t *testing.T) {
	r := newRunner(t, "b", "a")
	before := r.Controller().Builds()

	if _, err := r.Step(0, config.Step{Op: "sort"}); err != nil {
		t.Fatal(err)
	}
	if got := r.Controller().Builds() - before; got != 1 {
		t.Errorf("sort plus status update built %d times, want 1", got)
	}
}

func TestStep_SpliceWithoutCountRemovesRest(t *testing.T) {
	r := newRunner(t, "a", "b", "c")

	res, err := r.Step(0, config.Step{Op: "splice", Start: intPtr(1), Values: []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := titles(r); !slices.Equal(got, []string{"a"}) {
		t.Errorf("titles = %v", got)
	}
	if res.Summary != `removed ["b" "c"]` {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestStep_FillCopyWithinSetLength(t *testing.T) {
	r := newRunner(t, "a", "b", "c", "d")

	steps := []config.Step{
		{Op: "copyWithin", Target: 0, Start: intPtr(2)},
		{Op: "fill", Value: "z", Start: intPtr(-1)},
		{Op: "setLength", Length: 5},
		{Op: "set", Index: 4, Value: "e"},
	}
	for i, step := range steps {
		if _, err := r.Step(i, step); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := titles(r), []string{"c", "d", "c", "z", "e"}; !slices.Equal(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestStep_ReplaceAndClear(t *testing.T) {
	r := newRunner(t, "a")

	if _, err := r.Step(0, config.Step{Op: "replace", Values: []string{"x", "y"}}); err != nil {
		t.Fatal(err)
	}
	if got := titles(r); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("after replace = %v", got)
	}
	res, err := r.Step(1, config.Step{Op: "clear"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 0 {
		t.Errorf("rows after clear = %v", res.Rows)
	}
}

func TestStep_PopEmpty(t *testing.T) {
	r := newRunner(t)

	res, err := r.Step(0, config.Step{Op: "pop"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary != "empty" || !res.Rebuilt {
		t.Errorf("pop on empty = %+v, want empty summary and a rebuild", res)
	}
}

func TestStep_PanicBecomesScriptError(t *testing.T) {
	panics := silence(t)
	r := newRunner(t, "a")

	_, err := r.Step(3, config.Step{Op: "setLength", Length: -1})
	var fe *errors.FrameworkError
	if !stderrors.As(err, &fe) || fe.Kind != errors.KindScript {
		t.Fatalf("expected script error, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 3 (setLength)") {
		t.Errorf("error = %v", err)
	}
	if len(*panics) != 1 {
		t.Errorf("expected the panic to be reported once, got %d", len(*panics))
	}
	if got := titles(r); !slices.Equal(got, []string{"a"}) {
		t.Errorf("list should be unchanged, got %v", got)
	}
}

func TestRun_StopsAtFirstError(t *testing.T) {
	silence(t)
	r := newRunner(t)

	results, err := r.Run(context.Background(), []config.Step{
		{Op: "push", Values: []string{"a"}},
		{Op: "set", Index: 5, Value: "b"},
		{Op: "push", Values: []string{"c"}},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
	if got := titles(r); !slices.Equal(got, []string{"a"}) {
		t.Errorf("titles = %v", got)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	r := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, []config.Step{{Op: "clear"}})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestStep_DetachedController(t *testing.T) {
	r := New(todo.App{Title: "t"}, nil)
	r.Close()

	if _, err := r.Step(0, config.Step{Op: "clear"}); err == nil {
		t.Error("expected an error after Close")
	}
}

func TestApply_UnknownOp(t *testing.T) {
	list := core.NewList[todo.Item](nil)
	if _, err := Apply(list, config.Step{Op: "explode"}); err == nil {
		t.Error("expected an error")
	}
}

func TestApply_SortOrders(t *testing.T) {
	list := core.NewList(nil, todo.NewItems("b", "c", "a")...)

	Apply(list, config.Step{Op: "sort", Order: "desc"})
	if got := todo.Titles(list.Items()); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("desc = %v", got)
	}
	Apply(list, config.Step{Op: "sort"})
	if got := todo.Titles(list.Items()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("default = %v", got)
	}
}

func TestRun_LogsSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := New(todo.App{Title: "t"}, logger)
	t.Cleanup(r.Close)

	if _, err := r.Run(context.Background(), []config.Step{{Op: "push", Values: []string{"milk"}}}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"step applied", "op=push", "rebuilt=true", `rows="1. milk"`, "script finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
