package core_test

import (
	"bytes"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/bfemu/core"
	"github.com/sarchlab/bfemu/program"
)

type fixture struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

func loadFixtures(path string) []fixture {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fixtures []fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		panic(err)
	}

	return fixtures
}

var _ = Describe("Fixtures", func() {
	for _, f := range loadFixtures("testdata/programs.yaml") {
		It("should run "+f.Name, func() {
			prog, err := program.Parse(f.Source)
			Expect(err).NotTo(HaveOccurred())

			out := new(bytes.Buffer)
			emu := core.NewBuilder().
				WithInput(strings.NewReader(f.Input)).
				WithOutput(out).
				Build("Emu")

			Expect(emu.Run(prog)).To(Succeed())
			Expect(out.String()).To(Equal(f.Output))
		})
	}
})
