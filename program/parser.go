package program

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedLeftBracket is reported for a '[' that is never closed.
	ErrUnmatchedLeftBracket = errors.New("unmatched left bracket")

	// ErrUnmatchedRightBracket is reported for a ']' with no open '['.
	ErrUnmatchedRightBracket = errors.New("unmatched right bracket")
)

// SyntaxError locates a bracket that could not be paired.
type SyntaxError struct {
	Err error

	// Index is the position of the bracket in the instruction sequence.
	Index int

	// Offset is the byte offset of the bracket in the source text.
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse decodes source into a Program. Bytes that are not one of the eight
// instruction characters are dropped. Brackets are paired innermost first;
// a malformed program yields a *SyntaxError wrapping
// ErrUnmatchedLeftBracket or ErrUnmatchedRightBracket.
func Parse(source string) (Program, error) {
	insts, offsets := tokenize(source)

	if err := resolveJumps(insts, offsets); err != nil {
		return Program{}, err
	}

	return Program{insts: insts}, nil
}

// tokenize maps each instruction byte to an Inst and records its source
// offset. Jump targets are left unresolved.
func tokenize(source string) ([]Inst, []int) {
	insts := make([]Inst, 0, len(source))
	offsets := make([]int, 0, len(source))

	for i := 0; i < len(source); i++ {
		op, ok := Decode(source[i])
		if !ok {
			continue
		}

		insts = append(insts, Inst{Opcode: op})
		offsets = append(offsets, i)
	}

	return insts, offsets
}

func resolveJumps(insts []Inst, offsets []int) error {
	var open []int

	for i := range insts {
		switch insts[i].Opcode {
		case JumpIfZero:
			open = append(open, i)
		case JumpIfNonZero:
			if len(open) == 0 {
				return &SyntaxError{
					Err:    ErrUnmatchedRightBracket,
					Index:  i,
					Offset: offsets[i],
				}
			}

			j := open[len(open)-1]
			open = open[:len(open)-1]

			insts[j].Target = i
			insts[i].Target = j
		}
	}

	if len(open) > 0 {
		j := open[0]
		return &SyntaxError{
			Err:    ErrUnmatchedLeftBracket,
			Index:  j,
			Offset: offsets[j],
		}
	}

	return nil
}
