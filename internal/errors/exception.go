package errors

import "errors"

const (
	ExitOK      = 0
	ExitFailure = 1
)

type Exception struct {
	Message  string
	ExitCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// ExitCode maps err to the process exit status of the CLI.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return ExitFailure
}
