package errors

var ErrTaskNotFound = &Exception{
	Message:  "task not found",
	ExitCode: 3,
}
