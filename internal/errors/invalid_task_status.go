package errors

var ErrInvalidTaskStatus = &Exception{
	Message:  "invalid task status",
	ExitCode: 2,
}
