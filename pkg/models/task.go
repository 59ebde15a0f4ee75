package model

import (
	"time"

	"task-manager.com/task-manager/pkg/constants"
)

type Task struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	Title       string               `gorm:"not null;check:chk_tasks_title,title <> ''" json:"title"`
	Description *string              `json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;check:chk_tasks_status,status IN ('Not Started','In Progress','Completed')" json:"status"`
	CreatedAt   time.Time            `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"not null" json:"updated_at"`
}
