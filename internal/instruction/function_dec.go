package instruction

import (
	"fmt"
	"strings"

	"github.com/jink-lang/jink/internal/value"
)

// FunctionDec is a function declaration: name, ordered parameters, optional
// return type, and a block body. FunctionDecs are stored shared — multiple
// call sites reference the same declaration by pointer — and are never
// mutated by a call.
type FunctionDec struct {
	Name   string
	Params []value.DecArg
	Return *value.TypeId
	Body   *Block
}

// NewFunctionDec builds a FunctionDec.
func NewFunctionDec(name string, params []value.DecArg, ret *value.TypeId, body *Block) *FunctionDec {
	return &FunctionDec{Name: name, Params: params, Return: ret, Body: body}
}

// Validate reports a duplicate-parameter-name error, or nil.
func (f *FunctionDec) Validate() error {
	seen := make(map[string]struct{}, len(f.Params))
	for _, p := range f.Params {
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("duplicate parameter %q in function %s", p.Name, f.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// Print renders the declaration's signature the way it appears in source.
func (f *FunctionDec) Print() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Print()
	}
	sig := fmt.Sprintf("func %s(%s)", f.Name, strings.Join(parts, ", "))
	if f.Return != nil {
		sig += " -> " + f.Return.String()
	}
	return sig
}
