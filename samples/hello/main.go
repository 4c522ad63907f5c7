package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/bfemu/api"
	"github.com/tebeka/atexit"
)

//go:embed hello.b
var helloProgram string

func main() {
	driver := api.DriverBuilder{}.
		WithOutput(os.Stdout).
		Build("Driver")

	if err := driver.Run(helloProgram); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
