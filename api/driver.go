// Package api defines the driver that takes brainfuck source through
// parsing and execution.
package api

import (
	"errors"
	"fmt"

	"github.com/sarchlab/bfemu/core"
	"github.com/sarchlab/bfemu/program"
)

var (
	// ErrSyntax wraps every error produced while parsing.
	ErrSyntax = errors.New("invalid brainfuck syntax")

	// ErrRuntime wraps every error produced while executing.
	ErrRuntime = errors.New("runtime error")
)

// Driver runs brainfuck programs.
type Driver interface {
	// Name returns the name of the driver.
	Name() string

	// Run parses source and executes it. Nothing is executed if the source
	// does not parse. Errors match ErrSyntax or ErrRuntime with errors.Is
	// and keep the underlying cause in the chain.
	Run(source string) error
}

type driverImpl struct {
	name string
	emu  *core.Emulator
}

func (d *driverImpl) Name() string {
	return d.name
}

func (d *driverImpl) Run(source string) error {
	prog, err := program.Parse(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	core.Trace("Parsed",
		"Driver", d.name,
		"Insts", prog.Len(),
	)

	if err := d.emu.Run(prog); err != nil {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return nil
}
