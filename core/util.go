package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/bfemu/program"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintProgram writes a table of every instruction in prog to w: its
// index, opcode, source character and, for jumps, the resolved target.
func PrintProgram(w io.Writer, prog program.Program) error {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Program (%d instructions)", prog.Len()))
	t.AppendHeader(table.Row{"#", "Opcode", "Char", "Target"})

	for i, inst := range prog.Insts() {
		target := ""
		if inst.IsJump() {
			target = strconv.Itoa(inst.Target)
		}

		t.AppendRow(table.Row{i, inst.Opcode.String(), inst.String(), target})
	}

	_, err := io.WriteString(w, t.Render()+"\n")

	return err
}
