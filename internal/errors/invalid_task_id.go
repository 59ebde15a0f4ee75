package errors

var ErrInvalidTaskID = &Exception{
	Message:  "task id must be a positive integer",
	ExitCode: 2,
}
