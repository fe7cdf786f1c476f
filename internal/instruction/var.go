package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// Var resolves an identifier in the scope map. It is the leaf lookup that
// VarOrEmptyType delegates to once it has determined (at execute time) that
// a bare identifier names a variable rather than a zero-field type
// instantiation.
type Var struct {
	Name string
}

// NewVar builds a Var lookup node.
func NewVar(name string) *Var { return &Var{Name: name} }

func (v *Var) Kind() Kind { return Expression(nil) }

func (v *Var) Print() string { return v.Name }

func (v *Var) Execute(ev Evaluator) *value.ObjectInstance {
	bound, ok := ev.GetVariable(v.Name)
	if !ok {
		ev.Errorf(errs.Context, v.Print(), "unknown identifier: %s", v.Name)
		return nil
	}
	return bound.Instance()
}
