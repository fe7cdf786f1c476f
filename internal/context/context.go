// Package context implements Context, the concrete instruction.Evaluator
// that owns everything a running program needs: the scope map, the error
// buffer, the current source path, and include resolution. It plays the
// role the teacher's runtime.ExecutionContext plays for its interpreter —
// one struct holding all execution state, handed to every node's execute
// call — but scoped down to what this language's evaluator actually needs
// (no call stack, no exception state: errors are accumulated, not thrown).
package context

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/include"
	"github.com/jink-lang/jink/internal/instruction"
	"github.com/jink-lang/jink/internal/scope"
	"github.com/jink-lang/jink/internal/value"
)

// Context is the interpreter's execution context: it implements
// instruction.Evaluator and is threaded through every node's Execute call.
type Context struct {
	scopes      *scope.ScopeMap
	errors      *errs.Buffer
	resolver    *include.Resolver
	currentPath string
	pending     *value.ObjectInstance
	pendingSet  bool
	pendingQuit bool
}

// New builds a Context with a fresh root scope, an empty error buffer, and
// the given include resolver. debug enables the diagnostic sink from the
// start; it can also be toggled later through the error buffer.
func New(resolver *include.Resolver, debug bool) *Context {
	return &Context{
		scopes:   scope.NewScopeMap(),
		errors:   errs.NewBuffer(debug),
		resolver: resolver,
	}
}

// AddVariable implements instruction.Evaluator.
func (c *Context) AddVariable(v *value.Var) error { return c.scopes.AddVariable(v) }

// GetVariable implements instruction.Evaluator.
func (c *Context) GetVariable(name string) (*value.Var, bool) { return c.scopes.GetVariable(name) }

// RemoveVariable implements instruction.Evaluator.
func (c *Context) RemoveVariable(v *value.Var) error { return c.scopes.RemoveVariable(v) }

// AddFunction implements instruction.Evaluator.
func (c *Context) AddFunction(f *instruction.FunctionDec) error { return c.scopes.AddFunction(f) }

// GetFunction implements instruction.Evaluator.
func (c *Context) GetFunction(name string) (*instruction.FunctionDec, bool) {
	return c.scopes.GetFunction(name)
}

// AddType implements instruction.Evaluator.
func (c *Context) AddType(t *value.TypeDec) error { return c.scopes.AddType(t) }

// GetType implements instruction.Evaluator.
func (c *Context) GetType(name string) (*value.TypeDec, bool) { return c.scopes.GetType(name) }

// ScopeEnter implements instruction.Evaluator.
func (c *Context) ScopeEnter() { c.scopes.Enter() }

// ScopeExit implements instruction.Evaluator.
func (c *Context) ScopeExit() { c.scopes.Exit() }

// Errorf implements instruction.Evaluator.
func (c *Context) Errorf(kind errs.Kind, printed string, format string, args ...any) {
	c.errors.Push(errs.Newf(kind, printed, format, args...))
}

// HasErrors implements instruction.Evaluator.
func (c *Context) HasErrors() bool { return c.errors.HasErrors() }

// Debug implements instruction.Evaluator.
func (c *Context) Debug(tag, msg string) { c.errors.Debug(tag, msg) }

// Errors exposes the accumulated diagnostics for the top-level driver.
func (c *Context) Errors() []*errs.Error { return c.errors.Errors() }

// Report renders the accumulated diagnostics, one per line.
func (c *Context) Report() string { return c.errors.Report() }

// ClearErrors discards accumulated diagnostics, used between REPL lines.
func (c *Context) ClearErrors() { c.errors.Clear() }

// SetDebug toggles the debug sink at runtime.
func (c *Context) SetDebug(on bool) { c.errors.SetDebug(on) }

// Dump implements instruction.Evaluator.
func (c *Context) Dump() string { return c.scopes.Dump() }

// CurrentPath implements instruction.Evaluator.
func (c *Context) CurrentPath() string { return c.currentPath }

// SetCurrentPath implements instruction.Evaluator.
func (c *Context) SetCurrentPath(path string) string {
	previous := c.currentPath
	c.currentPath = path
	return previous
}

// ResolveInclude implements instruction.Evaluator.
func (c *Context) ResolveInclude(currentPath, path string) ([]instruction.Node, string, error) {
	return c.resolver.Resolve(currentPath, path)
}

// SetPendingReturn implements instruction.Evaluator.
func (c *Context) SetPendingReturn(v *value.ObjectInstance) {
	c.pending = v
	c.pendingSet = true
}

// TakePendingReturn implements instruction.Evaluator. Taking the signal
// clears it, so it is consumed exactly once by the block that owns the
// enclosing function call.
func (c *Context) TakePendingReturn() (*value.ObjectInstance, bool) {
	if !c.pendingSet {
		return nil, false
	}
	v := c.pending
	c.pending = nil
	c.pendingSet = false
	return v, true
}

// SetPendingQuit implements instruction.Evaluator. It is never cleared:
// once a program has asked to quit, nothing in it runs again.
func (c *Context) SetPendingQuit() { c.pendingQuit = true }

// PendingQuit implements instruction.Evaluator.
func (c *Context) PendingQuit() bool { return c.pendingQuit }

var _ instruction.Evaluator = (*Context)(nil)
