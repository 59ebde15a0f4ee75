package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/pkg/constants"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseTaskID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidTaskID, arg)
	}
	return uint(id), nil
}

func parseStatus(v string) (constants.TaskStatus, error) {
	s, err := constants.ParseTaskStatus(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidTaskStatus, v)
	}
	return s, nil
}
