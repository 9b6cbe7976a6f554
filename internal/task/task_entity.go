package task

import (
	"time"

	"github.com/google/uuid"
)

// Assignment target kinds.
const (
	TargetCompany  = "company"
	TargetBranch   = "branch"
	TargetEmployee = "employee"
)

type Task struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedToType  string     `gorm:"type:varchar(20);not null"`
	AssignedToID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TaskDescription string     `gorm:"type:text;not null"`
	DueDate         *time.Time `gorm:"type:date"`
	IsCompleted     bool       `gorm:"default:false"`
	CompletedByID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Task) TableName() string { return "tasks" }

// TaskCompletion is one fan-out row of a branch task. The set of rows is
// snapshotted at assignment time and never grows afterwards.
type TaskCompletion struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TaskID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_task_completion"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_task_completion"`
	IsCompleted bool       `gorm:"default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TaskCompletion) TableName() string { return "task_completions" }
