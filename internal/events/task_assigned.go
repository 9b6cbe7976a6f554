package events

import "time"

const TaskAssignedTopic = "office.task.lifecycle.v1"

type TaskAssignedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	TaskID         string    `json:"task_id"`
	CompanyID      string    `json:"company_id"`
	AssignedToType string    `json:"assigned_to_type"`
	AssignedToID   string    `json:"assigned_to_id"`
	Description    string    `json:"description"`
	DueDate        string    `json:"due_date,omitempty"`
	AssigneeCount  int       `json:"assignee_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}
