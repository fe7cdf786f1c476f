package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// Include pulls another source file's top-level declarations into the
// current context. With no alias the included declarations are bound
// directly; with an alias every Renamer node the included file declares
// (func and type declarations) is prefixed "alias." before being executed,
// so e.g. "incl \"math\" as m" exposes "m.sqrt" rather than "sqrt".
type Include struct {
	Path  string
	Alias string
}

// NewInclude builds an Include node. alias may be "" for an unaliased
// include.
func NewInclude(path, alias string) *Include {
	return &Include{Path: path, Alias: alias}
}

func (i *Include) Kind() Kind { return Statement() }

func (i *Include) Print() string {
	out := "incl \"" + i.Path + "\""
	if i.Alias != "" {
		out += " as " + i.Alias
	}
	return out
}

func (i *Include) Execute(ev Evaluator) *value.ObjectInstance {
	ev.Debug("INCLUDE ENTER", i.Print())

	nodes, resolvedPath, err := ev.ResolveInclude(ev.CurrentPath(), i.Path)
	if err != nil {
		ev.Errorf(errs.Interpreter, i.Print(), "%s", err.Error())
		return nil
	}

	if i.Alias != "" {
		for _, n := range nodes {
			if r, ok := n.(Renamer); ok {
				r.Rename(i.Alias)
			}
		}
	}

	previous := ev.SetCurrentPath(resolvedPath)
	for _, n := range nodes {
		n.Execute(ev)
		if ev.HasErrors() {
			break
		}
	}
	ev.SetCurrentPath(previous)

	ev.Debug("INCLUDE EXIT", i.Print())
	return nil
}
