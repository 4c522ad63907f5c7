package core

import (
	"bytes"
	"io"
)

// Builder can create new emulators.
type Builder struct {
	debug       bool
	input       io.Reader
	output      io.Writer
	debugOutput io.Writer
}

// NewBuilder returns a builder with debug output disabled, an empty input
// and an output that discards everything.
func NewBuilder() Builder {
	return Builder{}
}

// WithDebug enables dumping the program before it runs.
func (b Builder) WithDebug(debug bool) Builder {
	b.debug = debug
	return b
}

// WithInput sets the stream that Input instructions read from.
func (b Builder) WithInput(input io.Reader) Builder {
	b.input = input
	return b
}

// WithOutput sets the stream that Output instructions write to.
func (b Builder) WithOutput(output io.Writer) Builder {
	b.output = output
	return b
}

// WithDebugOutput sets where the debug dump goes. It defaults to the
// program output.
func (b Builder) WithDebugOutput(w io.Writer) Builder {
	b.debugOutput = w
	return b
}

// Build creates an emulator.
func (b Builder) Build(name string) *Emulator {
	e := &Emulator{
		name:        name,
		debug:       b.debug,
		input:       b.input,
		output:      b.output,
		debugOutput: b.debugOutput,
	}

	if e.input == nil {
		e.input = bytes.NewReader(nil)
	}

	if e.output == nil {
		e.output = io.Discard
	}

	if e.debugOutput == nil {
		e.debugOutput = e.output
	}

	return e
}
