package context

import (
	"testing"

	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/include"
	"github.com/jink-lang/jink/internal/parser"
	"github.com/jink-lang/jink/internal/value"
)

func newTestContext(debug bool) *Context {
	return New(include.NewResolver(parser.Factory{}), debug)
}

func intVar(name string, n int64, mutable bool) *value.Var {
	return value.NewVar(name, value.NewPrimitiveInstance(value.PrimitiveInt, value.EncodeInt(n)), mutable)
}

func TestContextVariableLifecycle(t *testing.T) {
	c := newTestContext(false)

	if err := c.AddVariable(intVar("x", 1, false)); err != nil {
		t.Fatalf("unexpected error adding variable: %s", err)
	}
	v, ok := c.GetVariable("x")
	if !ok || v.Name() != "x" {
		t.Fatalf("expected to find variable x, got %+v ok=%v", v, ok)
	}
	if err := c.RemoveVariable(v); err != nil {
		t.Fatalf("unexpected error removing variable: %s", err)
	}
	if _, ok := c.GetVariable("x"); ok {
		t.Fatal("expected variable x to be gone after RemoveVariable")
	}
}

func TestContextScopeEnterExitIsolation(t *testing.T) {
	c := newTestContext(false)
	if err := c.AddVariable(intVar("outer", 1, false)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	c.ScopeEnter()
	if err := c.AddVariable(intVar("inner", 2, false)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, ok := c.GetVariable("outer"); !ok {
		t.Fatal("expected inner scope to see outer variable")
	}
	c.ScopeExit()

	if _, ok := c.GetVariable("inner"); ok {
		t.Fatal("expected inner variable to be gone after ScopeExit")
	}
	if _, ok := c.GetVariable("outer"); !ok {
		t.Fatal("expected outer variable to survive ScopeExit")
	}
}

func TestContextErrorAccumulationAndReport(t *testing.T) {
	c := newTestContext(false)
	if c.HasErrors() {
		t.Fatal("expected no errors on a fresh context")
	}
	c.Errorf(errs.Context, "x", "unknown identifier %s", "x")
	if !c.HasErrors() {
		t.Fatal("expected HasErrors to be true after Errorf")
	}
	if c.Report() == "" {
		t.Fatal("expected a non-empty report")
	}
	c.ClearErrors()
	if c.HasErrors() {
		t.Fatal("expected ClearErrors to discard accumulated errors")
	}
}

func TestContextSetCurrentPathReturnsPrevious(t *testing.T) {
	c := newTestContext(false)
	if got := c.SetCurrentPath("a.jk"); got != "" {
		t.Fatalf("expected empty previous path, got %q", got)
	}
	if got := c.SetCurrentPath("b.jk"); got != "a.jk" {
		t.Fatalf("expected previous path a.jk, got %q", got)
	}
	if c.CurrentPath() != "b.jk" {
		t.Fatalf("expected current path b.jk, got %q", c.CurrentPath())
	}
}

func TestContextPendingReturnConsumedOnce(t *testing.T) {
	c := newTestContext(false)
	if _, ok := c.TakePendingReturn(); ok {
		t.Fatal("expected no pending return on a fresh context")
	}

	want := value.NewPrimitiveInstance(value.PrimitiveInt, value.EncodeInt(42))
	c.SetPendingReturn(want)

	got, ok := c.TakePendingReturn()
	if !ok || got != want {
		t.Fatalf("expected to take the pending return, got %+v ok=%v", got, ok)
	}
	if _, ok := c.TakePendingReturn(); ok {
		t.Fatal("expected the pending return signal to be consumed exactly once")
	}
}

func TestContextDebugGatedBySetDebug(t *testing.T) {
	c := newTestContext(false)
	var captured []string
	c.errors.SetSink(func(tag, msg string) { captured = append(captured, tag+" "+msg) })

	c.Debug("TAG", "msg")
	if len(captured) != 0 {
		t.Fatal("expected Debug to be a no-op while debug is disabled")
	}

	c.SetDebug(true)
	c.Debug("TAG", "msg")
	if len(captured) != 1 {
		t.Fatalf("expected exactly one debug line, got %d", len(captured))
	}
}
