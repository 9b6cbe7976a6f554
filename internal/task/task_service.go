package task

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/events"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/messaging/kafka"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/contextutil"
	taskerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dueDateLayout = "2006-01-02"

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, companyID string, actor domain.Actor, req AssignTaskRequest) (TaskResponse, error)
	GetAll(ctx context.Context, companyID string, filter TaskFilter) ([]TaskResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TaskDetailResponse, error)
	GetMine(ctx context.Context, companyID string, actor domain.Actor) ([]EmployeeTaskResponse, error)
	Complete(ctx context.Context, companyID string, actor domain.Actor, id string) error
	Override(ctx context.Context, companyID string, actor domain.Actor, id string) error
	Reopen(ctx context.Context, companyID string, actor domain.Actor, id string) error
	Delete(ctx context.Context, companyID string, actor domain.Actor, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// Assign creates a task and, for branch targets, snapshots one completion
// row per active employee of the branch, all in one transaction. Employee
// principals can only target their own branch or its members.
func (s *service) Assign(ctx context.Context, companyID string, actor domain.Actor, req AssignTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign task requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("assigned_to_type", req.AssignedToType),
	)

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidDueDate
		}
		dueDate = &d
	}

	targetID := req.AssignedToID
	if req.AssignedToType == TargetCompany {
		targetID = companyID
	}
	if targetID == "" {
		return TaskResponse{}, taskerrors.ErrTargetRequired
	}
	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrTargetNotFound
	}

	if actor.Type == domain.PrincipalEmployee {
		if req.AssignedToType == TargetCompany {
			return TaskResponse{}, taskerrors.ErrNotManageable
		}
		if req.AssignedToType == TargetBranch && targetID != actor.BranchID {
			return TaskResponse{}, taskerrors.ErrNotManageable
		}
	}

	t := &Task{
		ID:              uuid.New(),
		CompanyID:       uuid.MustParse(companyID),
		AssignedToType:  req.AssignedToType,
		AssignedToID:    targetUUID,
		TaskDescription: req.TaskDescription,
		DueDate:         dueDate,
	}

	var assigneeCount int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		switch req.AssignedToType {
		case TargetBranch:
			branchActive, err := qtx.GetBranchActive(ctx, companyID, targetID)
			if err != nil {
				return err
			}
			if branchActive == nil {
				return taskerrors.ErrTargetNotFound
			}
			if !*branchActive {
				return taskerrors.ErrTargetInactive
			}

			employeeIDs, err := qtx.ListActiveBranchEmployeeIDs(ctx, companyID, targetID)
			if err != nil {
				return err
			}
			assigneeCount = len(employeeIDs)

			if err := qtx.Create(ctx, t); err != nil {
				return err
			}

			rows := make([]TaskCompletion, 0, len(employeeIDs))
			for _, empID := range employeeIDs {
				rows = append(rows, TaskCompletion{
					ID:         uuid.New(),
					TaskID:     t.ID,
					EmployeeID: uuid.MustParse(empID),
				})
			}
			if err := qtx.CreateCompletions(ctx, rows); err != nil {
				return err
			}

		case TargetEmployee:
			branchID, err := qtx.GetEmployeeBranch(ctx, companyID, targetID)
			if err != nil {
				return err
			}
			if branchID == "" {
				return taskerrors.ErrTargetNotFound
			}
			if actor.Type == domain.PrincipalEmployee && branchID != actor.BranchID {
				return taskerrors.ErrNotManageable
			}
			if err := qtx.Create(ctx, t); err != nil {
				return err
			}

		default:
			if err := qtx.Create(ctx, t); err != nil {
				return err
			}
		}

		if s.outbox != nil {
			event := events.TaskAssignedEvent{
				EventType:      "task_assigned",
				RequestID:      rid,
				TaskID:         t.ID.String(),
				CompanyID:      companyID,
				AssignedToType: req.AssignedToType,
				AssignedToID:   targetID,
				Description:    req.TaskDescription,
				DueDate:        req.DueDate,
				AssigneeCount:  assigneeCount,
				OccurredAt:     time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}

			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "task",
				AggregateID:   t.ID.String(),
				EventType:     event.EventType,
				Topic:         events.TaskAssignedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				s.logger.Error("assign task outbox persist failed",
					zap.String("task_id", t.ID.String()),
					zap.Error(err),
				)
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("assign task failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("assign task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
		zap.String("assigned_to_type", req.AssignedToType),
		zap.Int("assignee_count", assigneeCount),
	)
	return mapToResponse(TaskWithProgress{Task: *t, AssigneeCount: int64(assigneeCount)}), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter TaskFilter) ([]TaskResponse, error) {
	rows, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("get all tasks failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	resp := make([]TaskResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapToResponse(row))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TaskDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskDetailResponse{}, taskerrors.ErrInvalidTaskID
	}

	t, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return TaskDetailResponse{}, mapRepositoryError(err)
	}

	detail := TaskDetailResponse{TaskResponse: mapToResponse(TaskWithProgress{Task: *t})}
	if t.AssignedToType == TargetBranch {
		rows, err := s.repo.ListCompletions(ctx, id)
		if err != nil {
			return TaskDetailResponse{}, err
		}
		detail.AssigneeCount = int64(len(rows))
		for _, row := range rows {
			if row.IsCompleted {
				detail.CompletedCount++
			}
			detail.Completions = append(detail.Completions, CompletionResponse{
				EmployeeID:   row.EmployeeID.String(),
				EmployeeName: row.EmployeeName,
				IsCompleted:  row.IsCompleted,
				CompletedAt:  row.CompletedAt,
			})
		}
	}
	return detail, nil
}

func (s *service) GetMine(ctx context.Context, companyID string, actor domain.Actor) ([]EmployeeTaskResponse, error) {
	rows, err := s.repo.FindForEmployee(ctx, companyID, actor.UserID)
	if err != nil {
		s.logger.Error("get own tasks failed", zap.String("employee_id", actor.UserID), zap.Error(err))
		return nil, err
	}

	resp := make([]EmployeeTaskResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, EmployeeTaskResponse{
			TaskResponse: mapToResponse(TaskWithProgress{Task: row.Task}),
			MyCompleted:  row.MyCompleted,
		})
	}
	return resp, nil
}

// Complete marks the caller's own share of a task. For branch tasks that is
// the caller's fan-out row; the parent task flips once the last open row
// completes. Employee and company targeted tasks complete on the task row
// directly.
func (s *service) Complete(ctx context.Context, companyID string, actor domain.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}
	if actor.Type != domain.PrincipalEmployee {
		return taskerrors.ErrNotAssignee
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindByID(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if t.IsCompleted {
			return taskerrors.ErrTaskCompleted
		}

		now := time.Now().UTC()
		switch t.AssignedToType {
		case TargetBranch:
			row, err := qtx.FindCompletion(ctx, id, actor.UserID)
			if err != nil {
				return taskerrors.ErrNotAssignee
			}
			if row.IsCompleted {
				return taskerrors.ErrTaskCompleted
			}
			if err := qtx.UpdateCompletion(ctx, row.ID.String(), true, &now); err != nil {
				return err
			}

			open, err := qtx.CountOpenCompletions(ctx, id)
			if err != nil {
				return err
			}
			if open == 0 {
				return qtx.SetTaskCompleted(ctx, id, true, nil)
			}
			return nil

		case TargetEmployee:
			if t.AssignedToID.String() != actor.UserID {
				return taskerrors.ErrNotAssignee
			}
			completedBy := actor.UserID
			return qtx.SetTaskCompleted(ctx, id, true, &completedBy)

		default:
			completedBy := actor.UserID
			return qtx.SetTaskCompleted(ctx, id, true, &completedBy)
		}
	})
	if err != nil {
		return err
	}

	s.logger.Info("complete task success",
		zap.String("task_id", id),
		zap.String("employee_id", actor.UserID),
	)
	return nil
}

// manageScope decides whether the actor may override, reopen or delete the
// task. Companies manage everything they own; managers manage tasks
// targeting their own branch or its members.
func (s *service) manageScope(ctx context.Context, qtx Repository, companyID string, actor domain.Actor, t *Task) error {
	switch actor.Type {
	case domain.PrincipalCompany:
		return nil
	case domain.PrincipalEmployee:
		if actor.Role != domain.RoleManager {
			return taskerrors.ErrNotManageable
		}
		switch t.AssignedToType {
		case TargetBranch:
			if t.AssignedToID.String() != actor.BranchID {
				return taskerrors.ErrNotManageable
			}
			return nil
		case TargetEmployee:
			branchID, err := qtx.GetEmployeeBranch(ctx, companyID, t.AssignedToID.String())
			if err != nil {
				return err
			}
			if branchID != actor.BranchID {
				return taskerrors.ErrNotManageable
			}
			return nil
		default:
			return taskerrors.ErrNotManageable
		}
	default:
		return taskerrors.ErrNotManageable
	}
}

// Override force-completes the task and every fan-out row, recording who
// issued the override.
func (s *service) Override(ctx context.Context, companyID string, actor domain.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindByID(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if t.IsCompleted {
			return taskerrors.ErrTaskCompleted
		}
		if err := s.manageScope(ctx, qtx, companyID, actor, t); err != nil {
			return err
		}

		if err := qtx.CompleteAllCompletions(ctx, id); err != nil {
			return err
		}
		completedBy := actor.UserID
		return qtx.SetTaskCompleted(ctx, id, true, &completedBy)
	})
	if err != nil {
		return err
	}

	s.logger.Info("override task success",
		zap.String("task_id", id),
		zap.String("completed_by", actor.UserID),
	)
	return nil
}

// Reopen clears the task flag and resets every fan-out row.
func (s *service) Reopen(ctx context.Context, companyID string, actor domain.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindByID(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := s.manageScope(ctx, qtx, companyID, actor, t); err != nil {
			return err
		}

		if err := qtx.ResetCompletions(ctx, id); err != nil {
			return err
		}
		return qtx.SetTaskCompleted(ctx, id, false, nil)
	})
	if err != nil {
		return err
	}

	s.logger.Info("reopen task success", zap.String("task_id", id))
	return nil
}

// Delete removes the fan-out rows then the task itself.
func (s *service) Delete(ctx context.Context, companyID string, actor domain.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindByID(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := s.manageScope(ctx, qtx, companyID, actor, t); err != nil {
			return err
		}

		if err := qtx.DeleteCompletions(ctx, id); err != nil {
			return err
		}
		return qtx.Delete(ctx, companyID, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("delete task success", zap.String("task_id", id))
	return nil
}

func mapToResponse(row TaskWithProgress) TaskResponse {
	resp := TaskResponse{
		ID:              row.ID.String(),
		AssignedToType:  row.AssignedToType,
		AssignedToID:    row.AssignedToID.String(),
		TaskDescription: row.TaskDescription,
		IsCompleted:     row.IsCompleted,
		AssigneeCount:   row.AssigneeCount,
		CompletedCount:  row.CompletedCount,
		CreatedAt:       row.CreatedAt,
	}
	if row.DueDate != nil {
		d := row.DueDate.Format(dueDateLayout)
		resp.DueDate = &d
	}
	if row.CompletedByID != nil {
		id := row.CompletedByID.String()
		resp.CompletedByID = &id
	}
	return resp
}
