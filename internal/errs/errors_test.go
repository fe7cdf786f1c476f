package errs

import (
	"strings"
	"testing"
)

func TestBufferAccumulatesInOrder(t *testing.T) {
	b := NewBuffer(false)
	if b.HasErrors() {
		t.Fatal("fresh buffer should have no errors")
	}

	b.Push(New(Context, "unknown identifier: x", "x"))
	b.Push(New(Interpreter, "wrong arity", "f()"))

	if !b.HasErrors() {
		t.Fatal("expected HasErrors to be true after Push")
	}
	if len(b.Errors()) != 2 {
		t.Fatalf("len(Errors()) = %d, want 2", len(b.Errors()))
	}

	report := b.Report()
	idxCtx := strings.Index(report, "unknown identifier")
	idxArity := strings.Index(report, "wrong arity")
	if idxCtx < 0 || idxArity < 0 || idxCtx > idxArity {
		t.Errorf("Report() did not preserve insertion order: %q", report)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(false)
	b.Push(New(Parsing, "bad token", "???"))
	b.Clear()
	if b.HasErrors() {
		t.Error("Clear() should drop all accumulated errors")
	}
}

func TestDebugGatedByFlag(t *testing.T) {
	var got []string
	b := NewBuffer(false)
	b.SetSink(func(tag, msg string) { got = append(got, tag+":"+msg) })

	b.Debug("ENTER", "x")
	if len(got) != 0 {
		t.Fatal("Debug should be a no-op when debug is disabled")
	}

	b.SetDebug(true)
	b.Debug("ENTER", "x")
	if len(got) != 1 || got[0] != "ENTER:x" {
		t.Errorf("Debug output = %v, want [ENTER:x]", got)
	}
}

func TestErrorFormatsWithPosition(t *testing.T) {
	e := Newf(Context, "b.x", "field %q not found", "x").WithPos(3, 7, "b.x")
	msg := e.Error()
	if !strings.Contains(msg, "3:7") {
		t.Errorf("Error() = %q, want it to contain position 3:7", msg)
	}
}
