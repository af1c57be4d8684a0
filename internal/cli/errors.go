package cli

import (
	"errors"
	"fmt"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// ExitError carries the process exit code for a failed command, plus an
// optional hint printed under the error.
type ExitError struct {
	Code int
	Err  error
	Hint string
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: exitUsage, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return exitError
}
