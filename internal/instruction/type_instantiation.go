package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// FieldInit is one "name = expr" pair inside a type instantiation literal.
// Order in the literal need not match the type's declared field order —
// fields are matched by name, not position.
type FieldInit struct {
	Name  string
	Value Node
}

// TypeInstantiation builds a record instance from a type name and a set of
// named field initializers, e.g. Point { x = 1, y = 2 }. A type with zero
// declared fields is instantiated with no Fields at all (see
// VarOrEmptyType, which builds this node for bare type names).
type TypeInstantiation struct {
	Type   *value.TypeId
	Fields []FieldInit
}

// NewTypeInstantiation builds a TypeInstantiation node.
func NewTypeInstantiation(typ *value.TypeId, fields []FieldInit) *TypeInstantiation {
	return &TypeInstantiation{Type: typ, Fields: fields}
}

func (t *TypeInstantiation) Kind() Kind { return Expression(t.Type) }

func (t *TypeInstantiation) Print() string {
	out := t.Type.String() + " { "
	for i, f := range t.Fields {
		if i > 0 {
			out += ", "
		}
		out += f.Name + " = " + f.Value.Print()
	}
	return out + " }"
}

func (t *TypeInstantiation) Execute(ev Evaluator) *value.ObjectInstance {
	if t.Type.Primitive {
		ev.Errorf(errs.Interpreter, t.Print(), "cannot instantiate primitive type: %s", t.Type.Name)
		return nil
	}

	dec, ok := ev.GetType(t.Type.Name)
	if !ok {
		ev.Errorf(errs.Interpreter, t.Print(), "cannot find type %s", t.Type.Name)
		return nil
	}

	if len(t.Fields) != len(dec.Fields) {
		ev.Errorf(errs.Interpreter, t.Print(),
			"wrong number of fields for type %q: expected %d, got %d",
			dec.Name, len(dec.Fields), len(t.Fields))
		return nil
	}

	byName := make(map[string]Node, len(t.Fields))
	for _, f := range t.Fields {
		byName[f.Name] = f.Value
	}

	var data []byte
	fields := make(map[string]value.FieldSpan, len(dec.Fields))
	order := make([]string, 0, len(dec.Fields))

	for _, decArg := range dec.Fields {
		expr, ok := byName[decArg.Name]
		if !ok {
			ev.Errorf(errs.Interpreter, t.Print(), "missing field %q for type %s", decArg.Name, dec.Name)
			return nil
		}

		val := expr.Execute(ev)
		if val == nil {
			return nil
		}

		offset := len(data)
		data = append(data, val.Data()...)
		fields[decArg.Name] = value.FieldSpan{Offset: offset, Size: val.Size()}
		order = append(order, decArg.Name)
	}

	return value.NewRecordInstance(dec.Clone(), data, fields, order)
}
