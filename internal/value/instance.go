package value

import (
	"bytes"
	"fmt"
)

// FieldSpan locates a field's bytes within an ObjectInstance's data buffer.
type FieldSpan struct {
	Offset int
	Size   int
}

// ObjectInstance is the runtime representation of every jink value, from a
// bare integer to a multi-field record.
//
// typeName is always set — it is one of the five primitive spellings for
// primitive values, or the declaring record's name otherwise — and is what
// structural equality and diagnostics key off of. recordType is the fuller
// *TypeDec, carried only for instances that own a field map; it is nil for
// primitives and for record-valued fields extracted via GetField, since a
// field's own sub-field layout is not resolved without a scope to look its
// declared type up in.
//
// Invariants (enforced by the constructors below, never by direct field
// mutation from other packages):
//   - len(data) == size
//   - field spans are non-overlapping and their union covers [0, size)
//   - fieldOrder lists the same names as the keys of fields, in the order
//     the declaring TypeDec lists them
type ObjectInstance struct {
	typeName   string
	recordType *TypeDec
	size       int
	data       []byte
	fields     map[string]FieldSpan
	fieldOrder []string
}

// NewPrimitiveInstance builds an instance with no carried TypeDec and no
// field map — the representation used for int/float/bool/char/string
// values. typeName is one of the PrimitiveXxx constants.
func NewPrimitiveInstance(typeName string, data []byte) *ObjectInstance {
	return &ObjectInstance{typeName: typeName, size: len(data), data: data}
}

// NewRecordInstance builds an instance for a record type, given its
// concatenated field bytes and field spans in declared order. fieldOrder
// must list every key of fields exactly once.
func NewRecordInstance(typ *TypeDec, data []byte, fields map[string]FieldSpan, fieldOrder []string) *ObjectInstance {
	return &ObjectInstance{
		typeName:   typ.Name,
		recordType: typ,
		size:       len(data),
		data:       data,
		fields:     fields,
		fieldOrder: fieldOrder,
	}
}

// Size returns the instance's byte size.
func (o *ObjectInstance) Size() int { return o.size }

// Data returns the instance's raw bytes.
func (o *ObjectInstance) Data() []byte { return o.data }

// Fields returns the field span map: nil for a primitive instance, and an
// empty map for a record type with no declared fields.
func (o *ObjectInstance) Fields() map[string]FieldSpan { return o.fields }

// FieldOrder returns field names in declaration order.
func (o *ObjectInstance) FieldOrder() []string { return o.fieldOrder }

// Ty returns the carried record type declaration, or nil for primitives and
// for fields extracted without their own sub-layout.
func (o *ObjectInstance) Ty() *TypeDec { return o.recordType }

// SetTy clears (with nil) or replaces the carried record type declaration.
// typeName is left untouched, so diagnostics still name the instance's
// original type.
func (o *ObjectInstance) SetTy(t *TypeDec) { o.recordType = t }

// TypeName returns the instance's type name: the primitive spelling, or the
// declaring (or declared-field) record name.
func (o *ObjectInstance) TypeName() string { return o.typeName }

// FieldError is returned by GetField for both "no such field" and
// "receiver has no field map" (primitive receiver) failures.
type FieldError struct {
	Receiver string
	Field    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("no field %q on %s", e.Field, e.Receiver)
}

// GetField slices out the named field's bytes and returns a fresh instance
// carrying that field's declared TypeId name, with no field map of its own.
// Returns a *FieldError if name is absent from the field map, or if the
// receiver has no field map at all (i.e. is a primitive).
func (o *ObjectInstance) GetField(name string) (*ObjectInstance, error) {
	if o.fields == nil {
		return nil, &FieldError{Receiver: o.typeName, Field: name}
	}
	span, ok := o.fields[name]
	if !ok {
		return nil, &FieldError{Receiver: o.typeName, Field: name}
	}
	fieldBytes := make([]byte, span.Size)
	copy(fieldBytes, o.data[span.Offset:span.Offset+span.Size])

	fieldTypeName := name
	if o.recordType != nil {
		if idx, ok := o.recordType.FieldIndex(name); ok {
			fieldTypeName = o.recordType.Fields[idx].Type.Name
		}
	}
	return NewPrimitiveInstance(fieldTypeName, fieldBytes), nil
}

// Equal compares two instances structurally: by type name and raw bytes,
// not by pointer identity.
func (o *ObjectInstance) Equal(other *ObjectInstance) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.typeName != other.typeName {
		return false
	}
	return bytes.Equal(o.data, other.data)
}
