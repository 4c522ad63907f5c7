// Command bf runs a brainfuck program.
//
// Usage:
//
//	bf [-d] [-trace] [FILE]
//	bf [-d] [-trace] -c PROGRAM
//
// FILE defaults to "-", which reads the program from standard input.
// Program input comes from standard input and output goes to standard
// output.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/bfemu/api"
	"github.com/sarchlab/bfemu/core"
	"github.com/tebeka/atexit"
)

var errUsage = errors.New("a program file and -c cannot be used together")

type options struct {
	file    string
	command string
	inline  bool
	debug   bool
	trace   bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.StringVar(&opts.command, "c", "", "an inline brainfuck program")
	fs.StringVar(&opts.command, "command", "", "an inline brainfuck program")
	fs.BoolVar(&opts.debug, "d", false, "print the parsed program before running it")
	fs.BoolVar(&opts.debug, "debug", false, "print the parsed program before running it")
	fs.BoolVar(&opts.trace, "trace", false, "log every executed instruction to stderr")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "c" || f.Name == "command" {
			opts.inline = true
		}
	})

	switch fs.NArg() {
	case 0:
		opts.file = "-"
	case 1:
		opts.file = fs.Arg(0)
		if opts.inline {
			return opts, errUsage
		}
	default:
		return opts, fmt.Errorf("expected at most one program file, got %d", fs.NArg())
	}

	return opts, nil
}

// loadSource returns the inline program if one was given, otherwise the
// contents of the file, with "-" meaning stdin.
func loadSource(opts options, stdin io.Reader) (string, error) {
	if opts.inline {
		return opts.command, nil
	}

	if opts.file == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}

	data, err := os.ReadFile(opts.file)

	return string(data), err
}

func setupLogging(trace bool) {
	level := slog.LevelWarn
	if trace {
		level = core.LevelTrace
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	fs := flag.NewFlagSet("bf", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: bf [-d] [-trace] [FILE | -c PROGRAM]\n")
		fs.PrintDefaults()
	}

	opts, err := parseFlags(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		atexit.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fs.Usage()
		atexit.Exit(2)
	}

	setupLogging(opts.trace)

	source, err := loadSource(opts, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(1)
	}

	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		stdout.Flush()
	})

	builder := api.DriverBuilder{}.
		WithDebug(opts.debug).
		WithInput(os.Stdin).
		WithOutput(stdout)
	if opts.trace {
		builder = builder.WithHook(core.NewTraceHook())
	}

	if err := builder.Build("bf").Run(source); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
