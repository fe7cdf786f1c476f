package instruction

import "github.com/jink-lang/jink/internal/value"

// VarOrEmptyType is a bare identifier the parser cannot disambiguate at
// parse time: it may name a zero-field record type (T, used as an
// expression producing a fresh T instance with no fields) or a variable.
// The ambiguity is resolved at execute time against the current type
// table, the same way the advisory type checker classifies the same node
// (see internal/typecheck).
type VarOrEmptyType struct {
	Name string
}

// NewVarOrEmptyType builds a VarOrEmptyType node.
func NewVarOrEmptyType(name string) *VarOrEmptyType { return &VarOrEmptyType{Name: name} }

func (v *VarOrEmptyType) Kind() Kind { return Expression(nil) }

func (v *VarOrEmptyType) Print() string { return v.Name }

func (v *VarOrEmptyType) Execute(ev Evaluator) *value.ObjectInstance {
	if _, ok := ev.GetType(v.Name); ok {
		typ := value.NewTypeId(v.Name)
		ti := NewTypeInstantiation(&typ, nil)
		return ti.Execute(ev)
	}
	return (&Var{Name: v.Name}).Execute(ev)
}
