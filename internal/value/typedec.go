package value

import (
	"fmt"
	"strings"
)

// TypeDec is a record type declaration: a name and its ordered fields.
// Field order is significant — it is the byte layout order used by
// TypeInstantiation — and no two fields in the same TypeDec may share a
// name.
type TypeDec struct {
	Name   string
	Fields []DecArg
}

// NewTypeDec builds a TypeDec. It does not validate field uniqueness; callers
// (the TypeDecl instruction) are expected to call Validate during
// declaration.
func NewTypeDec(name string, fields []DecArg) *TypeDec {
	return &TypeDec{Name: name, Fields: fields}
}

// Validate reports a duplicate-field error, or nil if every field name in
// the declaration is unique.
func (t *TypeDec) Validate() error {
	seen := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("duplicate field %q in type %s", f.Name, t.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// FieldIndex returns the declared-order position of name, and whether it
// exists at all.
func (t *TypeDec) FieldIndex(name string) (int, bool) {
	for i, f := range t.Fields {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a value copy of the TypeDec with its own Fields slice, used
// when a TypeInstantiation captures the declaration at instantiation time.
func (t *TypeDec) Clone() *TypeDec {
	fields := make([]DecArg, len(t.Fields))
	copy(fields, t.Fields)
	return &TypeDec{Name: t.Name, Fields: fields}
}

// Prefix renames the type declaration "prefix.name", used by aliased
// includes.
func (t *TypeDec) Prefix(prefix string) {
	t.Name = prefix + "." + t.Name
}

// Print renders the declaration the way it appears in source.
func (t *TypeDec) Print() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Print()
	}
	return fmt.Sprintf("type %s(%s)", t.Name, strings.Join(parts, ", "))
}
