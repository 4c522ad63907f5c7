package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/program"
)

// HookPosRunStart marks the start of a run, before the first instruction.
// The hook item is the program.Program being run.
var HookPosRunStart = &sim.HookPos{Name: "Run Start"}

// HookPosInstExec marks that an instruction is about to execute. The hook
// item is a Step.
var HookPosInstExec = &sim.HookPos{Name: "Inst Exec"}

// HookPosRunEnd marks that a run halted successfully. The hook item is a
// Step holding the final state.
var HookPosRunEnd = &sim.HookPos{Name: "Run End"}

// Step is a snapshot of the execution cursor.
type Step struct {
	PC   int
	Ptr  uint16
	Inst program.Inst

	// Cell is the value under the data pointer before Inst executes.
	Cell byte
}

// TraceHook logs every position it is invoked at with Trace.
type TraceHook struct{}

// NewTraceHook creates a TraceHook.
func NewTraceHook() *TraceHook {
	return &TraceHook{}
}

// Func logs the hook context.
func (h *TraceHook) Func(ctx sim.HookCtx) {
	name := ""
	if n, ok := ctx.Domain.(sim.Named); ok {
		name = n.Name()
	}

	switch ctx.Pos {
	case HookPosRunStart:
		prog := ctx.Item.(program.Program)
		Trace("RunStart",
			"Emulator", name,
			"Insts", prog.Len(),
		)
	case HookPosInstExec:
		step := ctx.Item.(Step)
		Trace("Inst",
			"Emulator", name,
			"PC", step.PC,
			"Op", step.Inst.Opcode.String(),
			"Ptr", step.Ptr,
			"Cell", step.Cell,
		)
	case HookPosRunEnd:
		step := ctx.Item.(Step)
		Trace("RunEnd",
			"Emulator", name,
			"PC", step.PC,
			"Ptr", step.Ptr,
			"Cell", step.Cell,
		)
	}
}
