package instruction

import (
	"github.com/jink-lang/jink/internal/value"
)

// Constant produces a typed instance from a literal each time it is
// executed. The parser is responsible for turning literal source text into
// the typed Go value passed to one of the New*Constant constructors —
// Constant itself does no parsing.
type Constant struct {
	typeName string
	bytes    []byte
	printed  string
}

// NewIntConstant builds a Constant for an integer literal.
func NewIntConstant(n int64, printed string) *Constant {
	return &Constant{typeName: value.PrimitiveInt, bytes: value.EncodeInt(n), printed: printed}
}

// NewFloatConstant builds a Constant for a float literal.
func NewFloatConstant(f float64, printed string) *Constant {
	return &Constant{typeName: value.PrimitiveFloat, bytes: value.EncodeFloat(f), printed: printed}
}

// NewBoolConstant builds a Constant for a boolean literal.
func NewBoolConstant(b bool, printed string) *Constant {
	return &Constant{typeName: value.PrimitiveBool, bytes: value.EncodeBool(b), printed: printed}
}

// NewCharConstant builds a Constant for a character literal.
func NewCharConstant(r rune, printed string) *Constant {
	return &Constant{typeName: value.PrimitiveChar, bytes: value.EncodeChar(r), printed: printed}
}

// NewStringConstant builds a Constant for a string literal. text is the
// already-unescaped string content (without surrounding quotes).
func NewStringConstant(text, printed string) *Constant {
	return &Constant{typeName: value.PrimitiveString, bytes: value.EncodeString(text), printed: printed}
}

// Kind reports the constant's primitive type.
func (c *Constant) Kind() Kind {
	t := value.NewTypeId(c.typeName)
	return Expression(&t)
}

// Print renders the literal the way it appeared (or would appear) in
// source.
func (c *Constant) Print() string { return c.printed }

// Execute builds a fresh instance from the constant's bytes.
func (c *Constant) Execute(ev Evaluator) *value.ObjectInstance {
	data := make([]byte, len(c.bytes))
	copy(data, c.bytes)
	return value.NewPrimitiveInstance(c.typeName, data)
}
