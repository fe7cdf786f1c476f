// Package scope implements the interpreter's lexical scope stack: an
// ordered sequence of scopes, each holding three independent name tables
// (variables, functions, types), innermost scope last.
//
// The design note in the specification prefers a contiguous, push/pop-at-
// the-tail vector over a linked parent-pointer chain (the shape the
// teacher's runtime.Environment uses) for cache-friendliness, so ScopeMap
// is a slice of Scope rather than a chain of *Scope with an outer pointer.
// Lookup semantics — search innermost to outermost, shadow rather than
// clash — are carried over from the teacher's Environment.Get/Set/Define.
package scope

import (
	"fmt"
	"sort"

	"github.com/jink-lang/jink/internal/instruction"
	"github.com/jink-lang/jink/internal/value"
)

// Scope is one lexical frame: three independent identifier tables. A
// variable, a function, and a type may all share the same spelling in one
// scope without conflict — they do not share a namespace.
type Scope struct {
	variables map[string]*value.Var
	functions map[string]*instruction.FunctionDec
	types     map[string]*value.TypeDec
}

func newScope() *Scope {
	return &Scope{
		variables: make(map[string]*value.Var),
		functions: make(map[string]*instruction.FunctionDec),
		types:     make(map[string]*value.TypeDec),
	}
}

// ScopeMap is the stack of active scopes, innermost last.
type ScopeMap struct {
	scopes []*Scope
}

// NewScopeMap builds a ScopeMap with a single root scope already pushed.
func NewScopeMap() *ScopeMap {
	return &ScopeMap{scopes: []*Scope{newScope()}}
}

// Enter pushes a fresh empty scope.
func (m *ScopeMap) Enter() {
	m.scopes = append(m.scopes, newScope())
}

// Exit pops the innermost scope. Calling it on a scope map that has no
// scopes left is a fatal programmer error and panics.
func (m *ScopeMap) Exit() {
	if len(m.scopes) == 0 {
		panic("scope: exit called on an empty scope map")
	}
	m.scopes = m.scopes[:len(m.scopes)-1]
}

// Depth reports how many scopes are currently pushed.
func (m *ScopeMap) Depth() int { return len(m.scopes) }

func (m *ScopeMap) innermost() *Scope {
	return m.scopes[len(m.scopes)-1]
}

// AddVariable inserts v into the innermost scope. Fails if the innermost
// scope already has a variable by that name.
func (m *ScopeMap) AddVariable(v *value.Var) error {
	s := m.innermost()
	if _, ok := s.variables[v.Name()]; ok {
		return fmt.Errorf("already declared: %s", v.Name())
	}
	s.variables[v.Name()] = v
	return nil
}

// GetVariable walks innermost to outermost, returning the first match.
func (m *ScopeMap) GetVariable(name string) (*value.Var, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if v, ok := m.scopes[i].variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// RemoveVariable removes v from the innermost scope only. Fails if the
// innermost scope has no variable by that name.
func (m *ScopeMap) RemoveVariable(v *value.Var) error {
	s := m.innermost()
	if _, ok := s.variables[v.Name()]; !ok {
		return fmt.Errorf("not declared in innermost scope: %s", v.Name())
	}
	delete(s.variables, v.Name())
	return nil
}

// AddFunction inserts f into the innermost scope. Fails if the innermost
// scope already has a function by that name.
func (m *ScopeMap) AddFunction(f *instruction.FunctionDec) error {
	s := m.innermost()
	if _, ok := s.functions[f.Name]; ok {
		return fmt.Errorf("already declared: %s", f.Name)
	}
	s.functions[f.Name] = f
	return nil
}

// GetFunction walks innermost to outermost, returning the first match.
func (m *ScopeMap) GetFunction(name string) (*instruction.FunctionDec, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if f, ok := m.scopes[i].functions[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// AddType inserts t into the innermost scope. Fails if the innermost
// scope already has a type by that name.
func (m *ScopeMap) AddType(t *value.TypeDec) error {
	s := m.innermost()
	if _, ok := s.types[t.Name]; ok {
		return fmt.Errorf("already declared: %s", t.Name)
	}
	s.types[t.Name] = t
	return nil
}

// GetType walks innermost to outermost, returning the first match.
func (m *ScopeMap) GetType(name string) (*value.TypeDec, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if t, ok := m.scopes[i].types[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Dump renders every scope's contents, innermost first, for the @dump
// directive. Each table is rendered in sorted-name order rather than map
// iteration order, so the output (and any snapshot taken of it) is
// deterministic across runs.
func (m *ScopeMap) Dump() string {
	out := ""
	for i := len(m.scopes) - 1; i >= 0; i-- {
		s := m.scopes[i]
		out += fmt.Sprintf("scope %d:\n", i)

		varNames := make([]string, 0, len(s.variables))
		for name := range s.variables {
			varNames = append(varNames, name)
		}
		sort.Strings(varNames)
		for _, name := range varNames {
			out += fmt.Sprintf("  var %s = %s\n", name, s.variables[name].Print())
		}

		funcNames := make([]string, 0, len(s.functions))
		for name := range s.functions {
			funcNames = append(funcNames, name)
		}
		sort.Strings(funcNames)
		for _, name := range funcNames {
			out += fmt.Sprintf("  %s\n", s.functions[name].Print())
		}

		typeNames := make([]string, 0, len(s.types))
		for name := range s.types {
			typeNames = append(typeNames, name)
		}
		sort.Strings(typeNames)
		for _, name := range typeNames {
			out += fmt.Sprintf("  %s\n", s.types[name].Print())
		}
	}
	return out
}
