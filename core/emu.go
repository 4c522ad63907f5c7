package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/program"
)

// TapeSize is the number of cells on the tape. The data pointer is a
// uint16, so moving past either end wraps around to the other.
const TapeSize = 1 << 16

// RuntimeError is a failure of the input or output stream during
// execution.
type RuntimeError struct {
	Op  string
	PC  int
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at instruction %d: %v", e.Op, e.PC, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

type emuState struct {
	PC   int
	Ptr  uint16
	Tape *[TapeSize]byte
}

type flusher interface {
	Flush() error
}

// Emulator executes parsed programs against a byte tape.
type Emulator struct {
	sim.HookableBase

	name        string
	debug       bool
	input       io.Reader
	output      io.Writer
	debugOutput io.Writer

	state emuState
}

// Name returns the name of the emulator.
func (e *Emulator) Name() string {
	return e.name
}

// Run executes prog until the program counter runs off the end of the
// program or a stream fails. Each call starts from a zeroed tape.
func (e *Emulator) Run(prog program.Program) error {
	e.state = emuState{Tape: new([TapeSize]byte)}

	if e.debug {
		if err := PrintProgram(e.debugOutput, prog); err != nil {
			return &RuntimeError{Op: "debug dump", PC: 0, Err: err}
		}
	}

	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosRunStart,
		Item:   prog,
	})

	for e.state.PC < prog.Len() {
		inst := prog.Inst(e.state.PC)

		e.InvokeHook(sim.HookCtx{
			Domain: e,
			Pos:    HookPosInstExec,
			Item:   e.step(inst),
		})

		if err := e.runInst(inst); err != nil {
			return err
		}

		e.state.PC++
	}

	if err := e.flush(); err != nil {
		return err
	}

	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosRunEnd,
		Item:   e.step(program.Inst{}),
	})

	return nil
}

func (e *Emulator) step(inst program.Inst) Step {
	return Step{
		PC:   e.state.PC,
		Ptr:  e.state.Ptr,
		Inst: inst,
		Cell: e.state.Tape[e.state.Ptr],
	}
}

func (e *Emulator) runInst(inst program.Inst) error {
	s := &e.state

	switch inst.Opcode {
	case program.MoveRight:
		s.Ptr++
	case program.MoveLeft:
		s.Ptr--
	case program.Increment:
		s.Tape[s.Ptr]++
	case program.Decrement:
		s.Tape[s.Ptr]--
	case program.Output:
		return e.runOutput()
	case program.Input:
		return e.runInput()
	case program.JumpIfZero:
		if s.Tape[s.Ptr] == 0 {
			s.PC = inst.Target
		}
	case program.JumpIfNonZero:
		if s.Tape[s.Ptr] != 0 {
			s.PC = inst.Target
		}
	default:
		panic(fmt.Sprintf("unknown opcode %v at PC %d", inst.Opcode, s.PC))
	}

	return nil
}

func (e *Emulator) cell() []byte {
	p := int(e.state.Ptr)
	return e.state.Tape[p : p+1]
}

func (e *Emulator) runOutput() error {
	n, err := e.output.Write(e.cell())
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}

	if err != nil {
		return &RuntimeError{Op: "write", PC: e.state.PC, Err: err}
	}

	return nil
}

// runInput reads at most one byte into the current cell. End of input
// leaves the cell at zero.
func (e *Emulator) runInput() error {
	if err := e.flush(); err != nil {
		return err
	}

	buf := e.cell()
	buf[0] = 0

	n, err := e.input.Read(buf)
	if n == 0 {
		buf[0] = 0
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return &RuntimeError{Op: "read", PC: e.state.PC, Err: err}
	}

	return nil
}

// flush drains a buffered output sink. It runs before every read and
// when the program halts.
func (e *Emulator) flush() error {
	f, ok := e.output.(flusher)
	if !ok {
		return nil
	}

	if err := f.Flush(); err != nil {
		return &RuntimeError{Op: "flush", PC: e.state.PC, Err: err}
	}

	return nil
}
