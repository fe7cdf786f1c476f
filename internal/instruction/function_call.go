package instruction

import (
	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/value"
)

// FunctionCall resolves a name to a FunctionDec, checks arity, evaluates
// its arguments left to right, and runs the declaration's body in a fresh
// scope with parameters bound positionally. Recursion is permitted: each
// call pushes its own scope.
type FunctionCall struct {
	Name string
	Args []Node
}

// NewFunctionCall builds a FunctionCall node.
func NewFunctionCall(name string, args []Node) *FunctionCall {
	return &FunctionCall{Name: name, Args: args}
}

func (c *FunctionCall) Kind() Kind { return Expression(nil) }

func (c *FunctionCall) Print() string {
	out := c.Name + "("
	for i, a := range c.Args {
		if i > 0 {
			out += ", "
		}
		out += a.Print()
	}
	return out + ")"
}

func (c *FunctionCall) Execute(ev Evaluator) *value.ObjectInstance {
	fn, ok := ev.GetFunction(c.Name)
	if !ok {
		ev.Errorf(errs.Interpreter, c.Print(), "cannot find function %s", c.Name)
		return nil
	}

	if len(c.Args) != len(fn.Params) {
		ev.Errorf(errs.Interpreter, c.Print(),
			"wrong number of arguments for function call %q: expected %d, got %d",
			c.Name, len(fn.Params), len(c.Args))
		return nil
	}

	argVals := make([]*value.ObjectInstance, len(c.Args))
	for i, arg := range c.Args {
		v := arg.Execute(ev)
		if v == nil {
			return nil
		}
		argVals[i] = v
	}

	ev.ScopeEnter()
	defer ev.ScopeExit()

	for i, p := range fn.Params {
		if err := ev.AddVariable(value.NewVar(p.Name, argVals[i], false)); err != nil {
			ev.Errorf(errs.Context, c.Print(), "%s", err.Error())
			return nil
		}
	}

	result := fn.Body.Execute(ev)
	if pending, ok := ev.TakePendingReturn(); ok {
		result = pending
	}
	return result
}
