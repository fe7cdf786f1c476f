package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// FuncDecl is the top-level statement that publishes a FunctionDec into the
// current scope. It implements Renamer so Include can prefix its name when
// the including statement carries an alias.
type FuncDecl struct {
	Dec *FunctionDec
}

// NewFuncDecl builds a FuncDecl node.
func NewFuncDecl(dec *FunctionDec) *FuncDecl { return &FuncDecl{Dec: dec} }

func (d *FuncDecl) Kind() Kind { return Statement() }

func (d *FuncDecl) Print() string { return d.Dec.Print() }

// Rename prefixes the declaration's published name "prefix.name", used by
// an aliased Include before the declaration's FuncDecl node executes.
func (d *FuncDecl) Rename(prefix string) {
	d.Dec.Name = prefix + "." + d.Dec.Name
}

func (d *FuncDecl) Execute(ev Evaluator) *value.ObjectInstance {
	if err := d.Dec.Validate(); err != nil {
		ev.Errorf(errs.Context, d.Print(), "%s", err.Error())
		return nil
	}
	if err := ev.AddFunction(d.Dec); err != nil {
		ev.Errorf(errs.Context, d.Print(), "%s", err.Error())
	}
	return nil
}
