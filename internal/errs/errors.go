// Package errs implements the interpreter's error buffer: a context-owned,
// append-only accumulator of diagnostics plus a toggleable debug sink,
// grounded on the category/position shape of the teacher's own
// internal/errors and internal/interp/errors packages.
package errs

import (
	"fmt"
	"os"
)

// Kind categorizes an Error.
type Kind string

const (
	// Parsing covers token/grammar-level failures from the lexer and parser.
	Parsing Kind = "Parsing"
	// Context covers scope, binding, and shape mismatches: unknown
	// identifiers, field access on the wrong kind of value, reassigning an
	// immutable variable, redeclaring a name in the same scope.
	Context Kind = "Context"
	// Interpreter covers lookup failures, include I/O, and arity mismatches.
	Interpreter Kind = "Interpreter"
	// TypeChecker covers findings from the advisory type checker.
	TypeChecker Kind = "TypeChecker"
)

// Position is the lexical location an Error is attributed to.
type Position struct {
	Line   int
	Column int
}

// Error is a single diagnostic: its category, message, optional source
// location and excerpt, and the offending instruction's printed form.
type Error struct {
	Kind    Kind
	Message string
	Pos     *Position
	Excerpt string
	Printed string
}

func (e *Error) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s error at %d:%d: %s (%s)", e.Kind, e.Pos.Line, e.Pos.Column, e.Message, e.Printed)
	}
	return fmt.Sprintf("%s error: %s (%s)", e.Kind, e.Message, e.Printed)
}

// New builds an Error with no position information attached.
func New(kind Kind, message, printed string) *Error {
	return &Error{Kind: kind, Message: message, Printed: printed}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, printed string, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Printed: printed}
}

// WithPos attaches position and source-excerpt information and returns the
// same Error for chaining.
func (e *Error) WithPos(line, column int, excerpt string) *Error {
	e.Pos = &Position{Line: line, Column: column}
	e.Excerpt = excerpt
	return e
}

// Buffer is a context-owned, append-only accumulator of errors plus a
// toggleable debug sink. It never reorders entries, and drops them only
// when Clear is called: Report prints them back in insertion order.
type Buffer struct {
	entries []*Error
	debug   bool
	sink    func(tag, msg string)
}

// NewBuffer creates an empty Buffer. debug gates Debug: when false, Debug
// calls are no-ops.
func NewBuffer(debug bool) *Buffer {
	return &Buffer{debug: debug}
}

// SetSink overrides where Debug output goes (tests substitute a capturing
// sink in place of the default stderr writer).
func (b *Buffer) SetSink(sink func(tag, msg string)) {
	b.sink = sink
}

// SetDebug toggles the debug sink at runtime; the CLI's --debug flag sets
// its initial state through NewBuffer.
func (b *Buffer) SetDebug(on bool) { b.debug = on }

// DebugEnabled reports whether Debug calls currently emit anything.
func (b *Buffer) DebugEnabled() bool { return b.debug }

// Debug emits a short, uppercase-tagged diagnostic line if the debug sink
// is enabled, e.g. Debug("FIELD ACCESS ENTER", instr.Print()).
func (b *Buffer) Debug(tag, msg string) {
	if !b.debug {
		return
	}
	if b.sink != nil {
		b.sink(tag, msg)
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, msg)
}

// Push appends e to the buffer.
func (b *Buffer) Push(e *Error) {
	b.entries = append(b.entries, e)
}

// HasErrors reports whether any error has been pushed since the buffer was
// created or last cleared.
func (b *Buffer) HasErrors() bool { return len(b.entries) > 0 }

// Errors returns the accumulated errors in insertion order. The returned
// slice must not be mutated by the caller.
func (b *Buffer) Errors() []*Error { return b.entries }

// Clear discards all accumulated errors, used by tests and REPL reset.
func (b *Buffer) Clear() { b.entries = nil }

// Report formats every accumulated error, one per line, in insertion order.
func (b *Buffer) Report() string {
	out := ""
	for i, e := range b.entries {
		if i > 0 {
			out += "\n"
		}
		out += e.Error()
	}
	return out
}
