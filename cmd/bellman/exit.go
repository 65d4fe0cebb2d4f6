package main

import "fmt"

// Process exit codes.
const (
	ExitSuccess = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// ExitError is an error type that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError reports bad flags, arguments, configuration or input data.
func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// runtimeError reports a failure while doing valid work (I/O, encoding).
func runtimeError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitRuntime, Message: fmt.Sprintf(format, args...)}
}
