package instruction

import (
	"fmt"
	"io"
	"os"

	"github.com/jink-lang/jink/internal/value"
)

// Directive names the fixed set of interpreter instructions a JkInst node
// may carry. The parser rejects any other callee spelled with the "@"
// sigil before a JkInst node is ever constructed.
type Directive string

const (
	DirectiveDump  Directive = "dump"
	DirectiveQuit  Directive = "quit"
	DirectiveIr    Directive = "ir"
	DirectiveError Directive = "error"
)

// exitFunc is overridden in tests so DirectiveQuit/DirectiveError can be
// exercised without killing the test binary.
var exitFunc = os.Exit

// diagStream is overridden in tests to capture what would otherwise go to
// stderr.
var diagStream io.Writer = os.Stderr

// SetExitFuncForTest swaps exitFunc for fn and returns a closure that
// restores the previous one, so @quit/@error can be exercised without
// killing the test binary.
func SetExitFuncForTest(fn func(int)) (restore func()) {
	previous := exitFunc
	exitFunc = fn
	return func() { exitFunc = previous }
}

// SetDiagStreamForTest swaps diagStream for w and returns a closure that
// restores the previous one.
func SetDiagStreamForTest(w io.Writer) (restore func()) {
	previous := diagStream
	diagStream = w
	return func() { diagStream = previous }
}

// JkInst is an interpreter directive: @dump, @quit, @ir, or @error. It is
// built from a parsed function-call form whose callee the parser has
// already matched against the fixed directive set.
type JkInst struct {
	Name Directive
	Args []Node
}

// NewJkInst builds a JkInst node.
func NewJkInst(name Directive, args []Node) *JkInst {
	return &JkInst{Name: name, Args: args}
}

func (j *JkInst) Kind() Kind { return Statement() }

func (j *JkInst) Print() string {
	out := "@" + string(j.Name) + "("
	for i, a := range j.Args {
		if i > 0 {
			out += ", "
		}
		out += a.Print()
	}
	return out + ")"
}

func (j *JkInst) Execute(ev Evaluator) *value.ObjectInstance {
	switch j.Name {
	case DirectiveDump:
		fmt.Fprintln(diagStream, ev.Dump())
	case DirectiveQuit:
		ev.SetPendingQuit()
		exitFunc(0)
	case DirectiveIr:
		fmt.Fprintln(diagStream, "usage: jink [--version] [--interactive] [--debug] [--no-std-lib] [file]")
	case DirectiveError:
		for _, a := range j.Args {
			v := a.Execute(ev)
			if v == nil {
				continue
			}
			fmt.Fprintln(diagStream, string(v.Data()))
		}
		ev.SetPendingQuit()
		exitFunc(1)
	}
	return nil
}
