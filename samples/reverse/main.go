package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/bfemu/api"
	"github.com/tebeka/atexit"
)

//go:embed reverse.b
var reverseProgram string

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		stdout.Flush()
	})

	driver := api.DriverBuilder{}.
		WithInput(bufio.NewReader(os.Stdin)).
		WithOutput(stdout).
		Build("Driver")

	if err := driver.Run(reverseProgram); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
