package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// VarAssign both declares and reassigns variables, depending on whether Name
// is already bound at execute time. Mutable only matters for declaration —
// it is the "mut" qualifier parsed at the declaration site — since
// reassignment always checks the mutability the variable was originally
// declared with.
type VarAssign struct {
	Name    string
	Mutable bool
	Value   Node
}

// NewVarAssign builds a VarAssign node.
func NewVarAssign(name string, mutable bool, value Node) *VarAssign {
	return &VarAssign{Name: name, Mutable: mutable, Value: value}
}

func (a *VarAssign) Kind() Kind { return Statement() }

func (a *VarAssign) Print() string {
	prefix := ""
	if a.Mutable {
		prefix = "mut "
	}
	return prefix + a.Name + " = " + a.Value.Print()
}

func (a *VarAssign) Execute(ev Evaluator) *value.ObjectInstance {
	result := a.Value.Execute(ev)
	if result == nil {
		if !ev.HasErrors() {
			ev.Errorf(errs.Context, a.Print(), "instance %s is a statement and cannot be assigned", a.Value.Print())
		}
		return nil
	}

	if existing, ok := ev.GetVariable(a.Name); ok {
		if !existing.Mutable() {
			ev.Errorf(errs.Context, a.Print(), "cannot reassign immutable variable: %s", a.Name)
			return nil
		}
		existing.Rebind(result)
		return nil
	}

	v := value.NewVar(a.Name, result, a.Mutable)
	if err := ev.AddVariable(v); err != nil {
		ev.Errorf(errs.Context, a.Print(), "%s", err.Error())
	}
	return nil
}
