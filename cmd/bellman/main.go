// Command bellman solves single-source shortest-path problems with negative
// weights and generates random problem files.
//
// Usage:
//
//	bellman solve [FILE|-] [--format text|yaml|json] [--full-scan] ...
//	bellman generate --vertices N --density p [--seed s] ...
//	bellman version
//
// Results go to stdout, logs to stderr. Exit codes: 0 success, 1 runtime
// failure, 2 usage or configuration error.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// main is the entrypoint for the bellman command.
func main() {
	// Use a minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitRuntime)
	}
}

// run wires the command tree to the given streams and executes args.
// Every error it returns is an *ExitError.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	root := newRootCmd(&app{stdin: stdin, stdout: stdout, stderr: stderr})
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects before a RunE starts is a usage error.
	return usageError(err)
}
