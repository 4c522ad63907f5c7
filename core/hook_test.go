package core_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bfemu/core"
	"github.com/sarchlab/bfemu/program"
)

var _ = Describe("TraceHook", func() {
	var logs *bytes.Buffer

	BeforeEach(func() {
		logs = new(bytes.Buffer)

		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{
			Level: core.LevelTrace,
		})))
		DeferCleanup(func() { slog.SetDefault(prev) })
	})

	It("should log each executed instruction", func() {
		prog, err := program.Parse("+>")
		Expect(err).NotTo(HaveOccurred())

		emu := core.NewBuilder().Build("Tracer")
		emu.AcceptHook(core.NewTraceHook())

		Expect(emu.Run(prog)).To(Succeed())

		out := logs.String()
		Expect(out).To(ContainSubstring("msg=RunStart Emulator=Tracer Insts=2"))
		Expect(out).To(ContainSubstring("msg=Inst Emulator=Tracer PC=0 Op=Increment Ptr=0 Cell=0"))
		Expect(out).To(ContainSubstring("msg=Inst Emulator=Tracer PC=1 Op=MoveRight Ptr=0 Cell=1"))
		Expect(out).To(ContainSubstring("msg=RunEnd Emulator=Tracer PC=2 Ptr=1 Cell=0"))
	})

	It("should stay quiet above the trace level", func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))

		prog, err := program.Parse("+")
		Expect(err).NotTo(HaveOccurred())

		emu := core.NewBuilder().Build("Tracer")
		emu.AcceptHook(core.NewTraceHook())

		Expect(emu.Run(prog)).To(Succeed())
		Expect(logs.Len()).To(Equal(0))
	})
})

var _ = Describe("PrintProgram", func() {
	It("should list jump targets", func() {
		prog, err := program.Parse("+[-]")
		Expect(err).NotTo(HaveOccurred())

		buf := new(bytes.Buffer)
		Expect(core.PrintProgram(buf, prog)).To(Succeed())

		lines := buf.String()
		Expect(lines).To(ContainSubstring("Program (4 instructions)"))
		Expect(lines).To(MatchRegexp(`\|\s*1\s*\|\s*JumpIfZero\s*\|\s*\[\s*\|\s*3\s*\|`))
		Expect(lines).To(MatchRegexp(`\|\s*3\s*\|\s*JumpIfNonZero\s*\|\s*\]\s*\|\s*1\s*\|`))
		Expect(lines).To(MatchRegexp(`\|\s*0\s*\|\s*Increment\s*\|\s*\+\s*\|\s*\|`))
	})
})
