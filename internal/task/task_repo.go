package task

import (
	"context"
	"time"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/tenant"

	"gorm.io/gorm"
)

// TaskFilter narrows company task listings.
type TaskFilter struct {
	AssignedToType string
	AssignedToID   string
	Completed      *bool
}

// TaskWithProgress carries fan-out counters alongside the task row.
type TaskWithProgress struct {
	Task
	AssigneeCount  int64
	CompletedCount int64
}

// EmployeeTask is a task visible to one employee plus that employee's own
// completion state.
type EmployeeTask struct {
	Task
	MyCompleted bool
}

// CompletionWithEmployee joins a fan-out row with the employee's name.
type CompletionWithEmployee struct {
	TaskCompletion
	EmployeeName string
}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Task) error
	CreateCompletions(ctx context.Context, rows []TaskCompletion) error
	FindByID(ctx context.Context, companyID, id string) (*Task, error)
	FindAll(ctx context.Context, companyID string, filter TaskFilter) ([]TaskWithProgress, error)
	FindForEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeTask, error)
	FindCompletion(ctx context.Context, taskID, employeeID string) (*TaskCompletion, error)
	ListCompletions(ctx context.Context, taskID string) ([]CompletionWithEmployee, error)
	ListActiveBranchEmployeeIDs(ctx context.Context, companyID, branchID string) ([]string, error)
	GetBranchActive(ctx context.Context, companyID, branchID string) (*bool, error)
	GetEmployeeBranch(ctx context.Context, companyID, employeeID string) (string, error)
	CountOpenCompletions(ctx context.Context, taskID string) (int64, error)
	UpdateCompletion(ctx context.Context, id string, completed bool, at *time.Time) error
	CompleteAllCompletions(ctx context.Context, taskID string) error
	ResetCompletions(ctx context.Context, taskID string) error
	SetTaskCompleted(ctx context.Context, taskID string, completed bool, completedByID *string) error
	DeleteCompletions(ctx context.Context, taskID string) error
	Delete(ctx context.Context, companyID, taskID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) CreateCompletions(ctx context.Context, rows []TaskCompletion) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter TaskFilter) ([]TaskWithProgress, error) {
	q := r.db.WithContext(ctx).
		Table("tasks AS t").
		Select(`t.*,
			COUNT(tc.id) AS assignee_count,
			COUNT(tc.id) FILTER (WHERE tc.is_completed) AS completed_count`).
		Joins("LEFT JOIN task_completions tc ON tc.task_id = t.id").
		Where("t.company_id = ?", companyID).
		Group("t.id").
		Order("t.created_at DESC")

	if filter.AssignedToType != "" {
		q = q.Where("t.assigned_to_type = ?", filter.AssignedToType)
	}
	if filter.AssignedToID != "" {
		q = q.Where("t.assigned_to_id = ?", filter.AssignedToID)
	}
	if filter.Completed != nil {
		q = q.Where("t.is_completed = ?", *filter.Completed)
	}

	var rows []TaskWithProgress
	err := q.Scan(&rows).Error
	return rows, err
}

// FindForEmployee returns the union of tasks targeting the employee
// directly, fan-out rows for the employee, and company-wide tasks.
func (r *repository) FindForEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeTask, error) {
	var rows []EmployeeTask
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.*, COALESCE(tc.is_completed, t.is_completed) AS my_completed
		FROM tasks t
		LEFT JOIN task_completions tc ON tc.task_id = t.id AND tc.employee_id = ?
		WHERE t.company_id = ?
		  AND (
		    (t.assigned_to_type = 'employee' AND t.assigned_to_id = ?)
		    OR (t.assigned_to_type = 'branch' AND tc.id IS NOT NULL)
		    OR t.assigned_to_type = 'company'
		  )
		ORDER BY t.created_at DESC
	`, employeeID, companyID, employeeID).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindCompletion(ctx context.Context, taskID, employeeID string) (*TaskCompletion, error) {
	var tc TaskCompletion
	err := r.db.WithContext(ctx).
		First(&tc, "task_id = ? AND employee_id = ?", taskID, employeeID).Error
	return &tc, err
}

func (r *repository) ListCompletions(ctx context.Context, taskID string) ([]CompletionWithEmployee, error) {
	var rows []CompletionWithEmployee
	err := r.db.WithContext(ctx).
		Table("task_completions AS tc").
		Select("tc.*, e.full_name AS employee_name").
		Joins("JOIN employees e ON e.id = tc.employee_id").
		Where("tc.task_id = ?", taskID).
		Order("e.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListActiveBranchEmployeeIDs(ctx context.Context, companyID, branchID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT id FROM employees
		WHERE company_id = ? AND branch_id = ? AND is_active = TRUE
		ORDER BY created_at ASC
	`, companyID, branchID).Scan(&ids).Error
	return ids, err
}

func (r *repository) GetBranchActive(ctx context.Context, companyID, branchID string) (*bool, error) {
	var rows []bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT is_active FROM branches WHERE company_id = ? AND id = ?
	`, companyID, branchID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *repository) GetEmployeeBranch(ctx context.Context, companyID, employeeID string) (string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT branch_id FROM employees WHERE company_id = ? AND id = ?
	`, companyID, employeeID).Scan(&ids).Error
	if err != nil || len(ids) == 0 {
		return "", err
	}
	return ids[0], nil
}

func (r *repository) CountOpenCompletions(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TaskCompletion{}).
		Where("task_id = ? AND is_completed = FALSE", taskID).
		Count(&count).Error
	return count, err
}

func (r *repository) UpdateCompletion(ctx context.Context, id string, completed bool, at *time.Time) error {
	return r.db.WithContext(ctx).
		Model(&TaskCompletion{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_completed": completed, "completed_at": at}).Error
}

func (r *repository) CompleteAllCompletions(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE task_completions
		SET is_completed = TRUE, completed_at = NOW(), updated_at = NOW()
		WHERE task_id = ? AND is_completed = FALSE
	`, taskID).Error
}

func (r *repository) ResetCompletions(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE task_completions
		SET is_completed = FALSE, completed_at = NULL, updated_at = NOW()
		WHERE task_id = ?
	`, taskID).Error
}

func (r *repository) SetTaskCompleted(ctx context.Context, taskID string, completed bool, completedByID *string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE tasks
		SET is_completed = ?, completed_by_id = ?, updated_at = NOW()
		WHERE id = ?
	`, completed, completedByID, taskID).Error
}

func (r *repository) DeleteCompletions(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM task_completions WHERE task_id = ?
	`, taskID).Error
}

func (r *repository) Delete(ctx context.Context, companyID, taskID string) error {
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM tasks WHERE company_id = ? AND id = ?
	`, companyID, taskID).Error
}
