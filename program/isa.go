package program

import "fmt"

// Opcode identifies the operation an instruction performs.
type Opcode uint8

// The eight operations of the language.
const (
	MoveRight Opcode = iota
	MoveLeft
	Increment
	Decrement
	Output
	Input
	JumpIfZero
	JumpIfNonZero
)

var opcodeNames = [...]string{
	MoveRight:     "MoveRight",
	MoveLeft:      "MoveLeft",
	Increment:     "Increment",
	Decrement:     "Decrement",
	Output:        "Output",
	Input:         "Input",
	JumpIfZero:    "JumpIfZero",
	JumpIfNonZero: "JumpIfNonZero",
}

var opcodeChars = [...]byte{
	MoveRight:     '>',
	MoveLeft:      '<',
	Increment:     '+',
	Decrement:     '-',
	Output:        '.',
	Input:         ',',
	JumpIfZero:    '[',
	JumpIfNonZero: ']',
}

// decodeTable maps a source byte to its opcode. Bytes that are not
// instructions map to ok == false.
var decodeTable = func() (t [256]struct {
	op Opcode
	ok bool
}) {
	for op, c := range opcodeChars {
		t[c].op = Opcode(op)
		t[c].ok = true
	}
	return t
}()

func (o Opcode) String() string {
	if int(o) < len(opcodeNames) {
		return opcodeNames[o]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// Char returns the source character the opcode is written as.
func (o Opcode) Char() byte {
	return opcodeChars[o]
}

// Decode returns the opcode written as c, if any.
func Decode(c byte) (Opcode, bool) {
	e := decodeTable[c]
	return e.op, e.ok
}

// Inst is one decoded instruction. Target holds the index of the matching
// bracket and is only meaningful for JumpIfZero and JumpIfNonZero.
type Inst struct {
	Opcode Opcode
	Target int
}

// IsJump reports whether the instruction carries a jump target.
func (i Inst) IsJump() bool {
	return i.Opcode == JumpIfZero || i.Opcode == JumpIfNonZero
}

// String renders the instruction as its source character.
func (i Inst) String() string {
	return string(i.Opcode.Char())
}
