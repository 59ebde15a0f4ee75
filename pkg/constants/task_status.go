package constants

import (
	"database/sql/driver"
	"fmt"
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "Not Started"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists every status in lifecycle order.
var TaskStatuses = []TaskStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus accepts only the exact stored spelling of a status.
func ParseTaskStatus(v string) (TaskStatus, error) {
	s := TaskStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown task status %q", v)
	}
	return s, nil
}

// Value keeps unknown statuses from ever reaching the engine.
func (s TaskStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown task status %q", string(s))
	}
	return string(s), nil
}

func (s *TaskStatus) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into task status", src)
	}

	parsed, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
