package errors

// ErrInvariantViolation reports a store self-check that failed. It is not
// reachable under correct operation.
var ErrInvariantViolation = &Exception{
	Message:  "task store invariant violated",
	ExitCode: 70,
}
