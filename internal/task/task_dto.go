package task

import "time"

type AssignTaskRequest struct {
	AssignedToType  string `json:"assigned_to_type" binding:"required,oneof=company branch employee"`
	AssignedToID    string `json:"assigned_to_id" binding:"omitempty,uuid"`
	TaskDescription string `json:"task_description" binding:"required"`
	DueDate         string `json:"due_date" binding:"omitempty"`
}

type TaskResponse struct {
	ID              string    `json:"id"`
	AssignedToType  string    `json:"assigned_to_type"`
	AssignedToID    string    `json:"assigned_to_id"`
	TaskDescription string    `json:"task_description"`
	DueDate         *string   `json:"due_date,omitempty"`
	IsCompleted     bool      `json:"is_completed"`
	CompletedByID   *string   `json:"completed_by_id,omitempty"`
	AssigneeCount   int64     `json:"assignee_count,omitempty"`
	CompletedCount  int64     `json:"completed_count,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CompletionResponse struct {
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// TaskDetailResponse adds the per-employee fan-out rows of a branch task.
type TaskDetailResponse struct {
	TaskResponse
	Completions []CompletionResponse `json:"completions,omitempty"`
}

// EmployeeTaskResponse is a task as seen by one employee. MyCompleted refers
// to that employee's own fan-out row for branch tasks, and to the task flag
// otherwise.
type EmployeeTaskResponse struct {
	TaskResponse
	MyCompleted bool `json:"my_completed"`
}
