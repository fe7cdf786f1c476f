// Package instruction defines the instruction tree the parser builds and
// the context evaluates: a tagged sum of node kinds (Var, VarAssign,
// FieldAccess, FunctionCall, TypeInstantiation, Include, JkInst, Return,
// Block, Constant, …) expressed as a common interface, following the
// teacher's approach of keeping every node variant in one package (see
// internal/ast in the teacher repository).
package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// Tag distinguishes a statement node (never produces a value) from an
// expression node (may produce one).
type Tag int

const (
	StatementTag Tag = iota
	ExpressionTag
)

// Kind is a node's kind() result: whether it is a statement or an
// expression, and — for expressions — its advisory type, which may be
// unknown (nil).
type Kind struct {
	Tag  Tag
	Type *value.TypeId
}

// Statement builds a statement Kind.
func Statement() Kind { return Kind{Tag: StatementTag} }

// Expression builds an expression Kind, optionally carrying its advisory
// type.
func Expression(t *value.TypeId) Kind { return Kind{Tag: ExpressionTag, Type: t} }

// IsExpression reports whether k is an expression kind.
func (k Kind) IsExpression() bool { return k.Tag == ExpressionTag }

// Node is the common interface every instruction tree node implements.
type Node interface {
	// Kind reports whether this node is a statement or an expression.
	Kind() Kind
	// Print renders a canonical source-like form, used for diagnostics and
	// debug dumps.
	Print() string
	// Execute evaluates the node against ev, returning the produced
	// instance for expressions, or nil for statements and for any node
	// (statement or expression) whose evaluation failed — on failure the
	// node has already pushed an error onto ev.
	Execute(ev Evaluator) *value.ObjectInstance
}

// Renamer is implemented by declaration-carrying nodes (FuncDecl, TypeDecl)
// that support the alias-prefixing an aliased Include applies to an
// included file's top-level declarations before executing them.
type Renamer interface {
	Rename(prefix string)
}

// Evaluator is the contract an instruction node needs from its execution
// context. It is declared here, in the package that consumes it, rather
// than imported from the concrete context package, so that instruction has
// no dependency on context, scope, or the parser — the same
// avoid-the-import-cycle shape the teacher's runtime package uses for
// IClassInfo.
type Evaluator interface {
	// Scope map access. Insertions always target the innermost scope;
	// lookups walk innermost to outermost.
	AddVariable(v *value.Var) error
	GetVariable(name string) (*value.Var, bool)
	RemoveVariable(v *value.Var) error
	AddFunction(f *FunctionDec) error
	GetFunction(name string) (*FunctionDec, bool)
	AddType(t *value.TypeDec) error
	GetType(name string) (*value.TypeDec, bool)

	// ScopeEnter pushes a fresh scope; ScopeExit pops the innermost one,
	// panicking if the scope map is already empty (a fatal programmer
	// error per the data model's lifecycle rules).
	ScopeEnter()
	ScopeExit()

	// Diagnostics.
	Errorf(kind errs.Kind, printed string, format string, args ...any)
	HasErrors() bool
	Debug(tag, msg string)

	// Dump renders the full context state (scope map contents), used by
	// the @dump directive.
	Dump() string

	// CurrentPath returns the current source file path, or "" if the
	// context has none (e.g. dynamic/REPL evaluation). SetCurrentPath
	// installs a new path and returns the previous one, so Include can
	// restore it on exit.
	CurrentPath() string
	SetCurrentPath(path string) string

	// ResolveInclude resolves path relative to the including file named by
	// currentPath (or the working directory, if currentPath is "") and
	// returns the parsed top-level instructions of the chosen candidate
	// file along with its resolved path.
	ResolveInclude(currentPath, path string) (nodes []Node, resolvedPath string, err error)

	// Pending-return signal, consumed by Block/FunctionCall to implement
	// "return e" short-circuiting to the enclosing function block's value.
	SetPendingReturn(v *value.ObjectInstance)
	TakePendingReturn() (*value.ObjectInstance, bool)

	// Pending-quit signal, set by @quit/@error alongside the real process
	// exit so that Block and the top-level driver can halt the remaining
	// instructions in-process too — the real exit call never returns in
	// production, but tests that substitute a non-terminating exit
	// function need an observable signal to assert against.
	SetPendingQuit()
	PendingQuit() bool
}
