package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// TypeDecl is the top-level statement that publishes a TypeDec into the
// current scope. It implements Renamer so Include can prefix its name when
// the including statement carries an alias.
type TypeDecl struct {
	Dec *value.TypeDec
}

// NewTypeDecl builds a TypeDecl node.
func NewTypeDecl(dec *value.TypeDec) *TypeDecl { return &TypeDecl{Dec: dec} }

func (d *TypeDecl) Kind() Kind { return Statement() }

func (d *TypeDecl) Print() string { return d.Dec.Print() }

// Rename prefixes the declaration's published name "prefix.name", used by
// an aliased Include before the declaration's TypeDecl node executes.
func (d *TypeDecl) Rename(prefix string) {
	d.Dec.Prefix(prefix)
}

func (d *TypeDecl) Execute(ev Evaluator) *value.ObjectInstance {
	if err := d.Dec.Validate(); err != nil {
		ev.Errorf(errs.Context, d.Print(), "%s", err.Error())
		return nil
	}
	if err := ev.AddType(d.Dec); err != nil {
		ev.Errorf(errs.Context, d.Print(), "%s", err.Error())
	}
	return nil
}
