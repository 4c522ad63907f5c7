package api

import (
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	debug       bool
	input       io.Reader
	output      io.Writer
	debugOutput io.Writer
	hooks       []sim.Hook
}

// WithDebug makes the driver dump every parsed program before running it.
func (b DriverBuilder) WithDebug(debug bool) DriverBuilder {
	b.debug = debug
	return b
}

// WithInput sets the stream programs read from.
func (b DriverBuilder) WithInput(input io.Reader) DriverBuilder {
	b.input = input
	return b
}

// WithOutput sets the stream programs write to.
func (b DriverBuilder) WithOutput(output io.Writer) DriverBuilder {
	b.output = output
	return b
}

// WithDebugOutput sets where the debug dump is written.
func (b DriverBuilder) WithDebugOutput(w io.Writer) DriverBuilder {
	b.debugOutput = w
	return b
}

// WithHook attaches a hook to the emulator the driver runs programs on.
func (b DriverBuilder) WithHook(hook sim.Hook) DriverBuilder {
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], hook)
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	emu := core.NewBuilder().
		WithDebug(b.debug).
		WithInput(b.input).
		WithOutput(b.output).
		WithDebugOutput(b.debugOutput).
		Build(name + ".Emu")

	for _, hook := range b.hooks {
		emu.AcceptHook(hook)
	}

	return &driverImpl{
		name: name,
		emu:  emu,
	}
}
