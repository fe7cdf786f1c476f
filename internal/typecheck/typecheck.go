// Package typecheck implements the advisory type checker: it classifies
// ambiguous bare-identifier nodes before execution, the same ambiguity
// instruction.VarOrEmptyType resolves at runtime against the live type
// table. The checker is advisory only — it never blocks execution and the
// runtime byte layout remains authoritative, per the purpose-and-scope
// non-goal of full static type-checking.
package typecheck

import "github.com/jink-lang/jink/internal/value"

// Classification is the checker's verdict for a bare identifier.
type Classification int

const (
	// Unknown means neither a type nor a variable is in scope for the name.
	Unknown Classification = iota
	// EmptyTypeInst means the name resolves to a declared record type and
	// would be executed as a zero-field instantiation.
	EmptyTypeInst
	// VarAccess means the name resolves to a bound variable.
	VarAccess
)

func (c Classification) String() string {
	switch c {
	case EmptyTypeInst:
		return "EmptyTypeInst"
	case VarAccess:
		return "VarAccess"
	default:
		return "Unknown"
	}
}

// TypeTable is the narrow lookup surface the checker needs: whether a name
// is a declared type, and whether it is a bound variable. scope.ScopeMap
// and context.Context both satisfy it already (GetType, GetVariable).
type TypeTable interface {
	GetType(name string) (*value.TypeDec, bool)
	GetVariable(name string) (*value.Var, bool)
}

// Classify resolves a bare identifier the same way
// instruction.VarOrEmptyType.Execute does: a declared type wins over a
// bound variable of the same name, since type names and variable names do
// not share a namespace and the runtime node checks GetType first.
func Classify(t TypeTable, name string) Classification {
	if _, ok := t.GetType(name); ok {
		return EmptyTypeInst
	}
	if _, ok := t.GetVariable(name); ok {
		return VarAccess
	}
	return Unknown
}
