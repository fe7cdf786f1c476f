package value

// Primitive type spellings. These names cannot be declared as record types
// and never require a TypeDec to be resolved.
const (
	PrimitiveInt    = "int"
	PrimitiveFloat  = "float"
	PrimitiveBool   = "bool"
	PrimitiveChar   = "char"
	PrimitiveString = "string"
)

var primitiveNames = map[string]struct{}{
	PrimitiveInt:    {},
	PrimitiveFloat:  {},
	PrimitiveBool:   {},
	PrimitiveChar:   {},
	PrimitiveString: {},
}

// TypeId names a type: either one of the five primitives, or a user-declared
// record type resolved through the current scope's type table.
type TypeId struct {
	Name      string
	Primitive bool
}

// NewTypeId builds a TypeId from a source spelling, deriving the Primitive
// flag from the fixed primitive name set.
func NewTypeId(name string) TypeId {
	_, ok := primitiveNames[name]
	return TypeId{Name: name, Primitive: ok}
}

func (t TypeId) String() string {
	return t.Name
}

// Prefix renames the type "prefix.name", used when an aliased include
// publishes a record type under a namespaced spelling. Primitive type ids
// are never renamed since they are not declared by any source file.
func (t *TypeId) Prefix(prefix string) {
	if t.Primitive {
		return
	}
	t.Name = prefix + "." + t.Name
}
