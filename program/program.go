// Package program defines the instruction set and the parser that turns
// brainfuck source into an executable program.
package program

import "strings"

// Program is an immutable, 0-indexed sequence of instructions with every
// bracket resolved to the index of its partner.
type Program struct {
	insts []Inst
}

// Len returns the number of instructions.
func (p Program) Len() int {
	return len(p.insts)
}

// Inst returns the instruction at index i.
func (p Program) Inst(i int) Inst {
	return p.insts[i]
}

// Insts returns a copy of the instruction sequence.
func (p Program) Insts() []Inst {
	out := make([]Inst, len(p.insts))
	copy(out, p.insts)
	return out
}

// String returns the canonical source of the program: the text it was
// parsed from with every non-instruction byte removed.
func (p Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p.insts))
	for _, inst := range p.insts {
		sb.WriteByte(inst.Opcode.Char())
	}
	return sb.String()
}
