package instruction

import (
	"strings"

	"github.com/jink-lang/jink/internal/value"
)

// Block is a sequence of instructions executed in source order. A Block's
// value — if it has one — is the value of its last instruction when that
// instruction is an expression, or the value carried by a "return e"
// anywhere inside it (which short-circuits the remaining instructions).
// The parser builds a Block for each function body.
type Block struct {
	Instrs []Node
}

// NewBlock builds a Block from its instructions in source order.
func NewBlock(instrs []Node) *Block {
	return &Block{Instrs: instrs}
}

// Kind reports Expression when the block is non-empty and its last
// instruction is itself an expression, Statement otherwise.
func (b *Block) Kind() Kind {
	if len(b.Instrs) == 0 {
		return Statement()
	}
	return b.Instrs[len(b.Instrs)-1].Kind()
}

// Print renders the block's instructions, one per line, between braces.
func (b *Block) Print() string {
	lines := make([]string, len(b.Instrs))
	for i, instr := range b.Instrs {
		lines[i] = instr.Print() + ";"
	}
	return "{ " + strings.Join(lines, " ") + " }"
}

// Execute runs each instruction in order. It stops early, returning nil, as
// soon as any instruction's execution leaves an error on ev, or sets the
// pending-quit signal (@quit/@error) — this mirrors the top-level driver's
// between-statements checks, applied inside a block so a function body does
// not keep evaluating after a failed statement or a directive that ends the
// program. It also stops early, returning the carried value, the moment a
// nested "return e" sets a pending-return signal.
func (b *Block) Execute(ev Evaluator) *value.ObjectInstance {
	var last *value.ObjectInstance
	for i, instr := range b.Instrs {
		last = instr.Execute(ev)

		if pending, ok := ev.TakePendingReturn(); ok {
			return pending
		}
		if ev.PendingQuit() {
			return nil
		}
		if ev.HasErrors() {
			return nil
		}
		if i == len(b.Instrs)-1 && instr.Kind().IsExpression() {
			return last
		}
	}
	return nil
}
