package instruction

import "github.com/jink-lang/jink/internal/value"

// Return carries an optional expression. It never produces a value through
// its own Execute — instead it sets ev's pending-return signal, which Block
// consumes to short-circuit the enclosing function block to Expr's value
// (or to no value, for a bare "return;").
type Return struct {
	Expr Node
}

// NewReturn builds a Return. expr may be nil.
func NewReturn(expr Node) *Return { return &Return{Expr: expr} }

func (r *Return) Kind() Kind { return Statement() }

func (r *Return) Print() string {
	if r.Expr == nil {
		return "return"
	}
	return "return " + r.Expr.Print()
}

func (r *Return) Execute(ev Evaluator) *value.ObjectInstance {
	var result *value.ObjectInstance
	if r.Expr != nil {
		result = r.Expr.Execute(ev)
		if result == nil && ev.HasErrors() {
			return nil
		}
	}
	ev.SetPendingReturn(result)
	return nil
}
