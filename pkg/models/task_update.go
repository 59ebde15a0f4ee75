package model

import "task-manager.com/task-manager/pkg/constants"

// Optional distinguishes "leave unchanged" from "set to the zero value".
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// TaskUpdate carries the fields of a partial update. Unset fields keep their
// stored value; a Description set to nil clears it.
type TaskUpdate struct {
	Title       Optional[string]
	Description Optional[*string]
	Status      Optional[constants.TaskStatus]
}
