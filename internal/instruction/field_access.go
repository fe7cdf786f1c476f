package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// FieldAccess represents an access onto a type instance's members. It can
// only ever be an expression, since statements never produce a value that
// could carry fields.
type FieldAccess struct {
	Instance  Node
	FieldName string
}

// NewFieldAccess builds a FieldAccess node.
func NewFieldAccess(instance Node, fieldName string) *FieldAccess {
	return &FieldAccess{Instance: instance, FieldName: fieldName}
}

func (f *FieldAccess) Kind() Kind { return Expression(nil) }

func (f *FieldAccess) Print() string {
	return f.Instance.Print() + "." + f.FieldName
}

func (f *FieldAccess) Execute(ev Evaluator) *value.ObjectInstance {
	ev.Debug("FIELD ACCESS ENTER", f.Print())

	receiver := f.Instance.Execute(ev)
	if receiver == nil {
		ev.Errorf(errs.Context, f.Print(), "instance %s is a statement and cannot be accessed", f.Instance.Print())
		return nil
	}

	field, err := receiver.GetField(f.FieldName)
	if err != nil {
		ev.Errorf(errs.Context, f.Print(), "%s", err.Error())
		return nil
	}

	ev.Debug("FIELD ACCESS EXIT", f.Print())
	return field
}
