package task_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/events"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/messaging/kafka"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/task"
	taskerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/task/errors"

	kafkaMock "github.com/Akhand-Replit/Akhand-office-v2/internal/messaging/kafka/mock"
	taskMock "github.com/Akhand-Replit/Akhand-office-v2/internal/task/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service task.Service
	repo    *taskMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := taskMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := task.NewServiceWithOutbox(gormDB, repo, outboxRepo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outboxRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func boolPtr(v bool) *bool { return &v }

func TestTaskService_Assign(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New().String()
	companyActor := domain.Actor{Type: domain.PrincipalCompany, UserID: companyID}

	t.Run("success - branch task fans out to active employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		employeeIDs := []string{uuid.New().String(), uuid.New().String(), uuid.New().String()}
		req := task.AssignTaskRequest{
			AssignedToType:  task.TargetBranch,
			AssignedToID:    branchID,
			TaskDescription: "Close the monthly books",
			DueDate:         "2026-09-15",
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			GetBranchActive(ctx, companyID, branchID).
			Return(boolPtr(true), nil)

		deps.repo.EXPECT().
			ListActiveBranchEmployeeIDs(ctx, companyID, branchID).
			Return(employeeIDs, nil)

		var taskID string
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, tk *task.Task) error {
				taskID = tk.ID.String()
				assert.Equal(t, task.TargetBranch, tk.AssignedToType)
				assert.Equal(t, branchID, tk.AssignedToID.String())
				assert.False(t, tk.IsCompleted)
				assert.NotNil(t, tk.DueDate)
				return nil
			})

		deps.repo.EXPECT().
			CreateCompletions(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, rows []task.TaskCompletion) error {
				assert.Len(t, rows, 3)
				for i, row := range rows {
					assert.Equal(t, taskID, row.TaskID.String())
					assert.Equal(t, employeeIDs[i], row.EmployeeID.String())
					assert.False(t, row.IsCompleted)
				}
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.TaskAssignedTopic, evt.Topic)
				assert.Equal(t, "task_assigned", evt.EventType)

				var payload events.TaskAssignedEvent
				assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, 3, payload.AssigneeCount)
				assert.Equal(t, branchID, payload.AssignedToID)
				return nil
			})

		resp, err := deps.service.Assign(ctx, companyID, companyActor, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.AssigneeCount)
		assert.NotNil(t, resp.DueDate)
		assert.Equal(t, "2026-09-15", *resp.DueDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("fail - deactivated branch target", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := task.AssignTaskRequest{
			AssignedToType:  task.TargetBranch,
			AssignedToID:    branchID,
			TaskDescription: "Anything",
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			GetBranchActive(ctx, companyID, branchID).
			Return(boolPtr(false), nil)

		_, err := deps.service.Assign(ctx, companyID, companyActor, req)
		assert.ErrorIs(t, err, taskerrors.ErrTargetInactive)
	})

	t.Run("fail - manager cannot target another branch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: uuid.New().String(),
			Role:     domain.RoleManager,
		}
		req := task.AssignTaskRequest{
			AssignedToType:  task.TargetBranch,
			AssignedToID:    branchID,
			TaskDescription: "Not yours",
		}

		_, err := deps.service.Assign(ctx, companyID, actor, req)
		assert.ErrorIs(t, err, taskerrors.ErrNotManageable)
	})

	t.Run("fail - manager cannot target employee of another branch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: uuid.New().String(),
			Role:     domain.RoleManager,
		}
		targetEmployee := uuid.New().String()
		req := task.AssignTaskRequest{
			AssignedToType:  task.TargetEmployee,
			AssignedToID:    targetEmployee,
			TaskDescription: "Cross branch",
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			GetEmployeeBranch(ctx, companyID, targetEmployee).
			Return(uuid.New().String(), nil)

		_, err := deps.service.Assign(ctx, companyID, actor, req)
		assert.ErrorIs(t, err, taskerrors.ErrNotManageable)
	})

	t.Run("fail - malformed due date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := task.AssignTaskRequest{
			AssignedToType:  task.TargetCompany,
			TaskDescription: "Anything",
			DueDate:         "15-09-2026",
		}

		_, err := deps.service.Assign(ctx, companyID, companyActor, req)
		assert.ErrorIs(t, err, taskerrors.ErrInvalidDueDate)
	})
}

func TestTaskService_Complete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New().String()

	branchTask := func(id uuid.UUID) *task.Task {
		return &task.Task{
			ID:             id,
			CompanyID:      uuid.MustParse(companyID),
			AssignedToType: task.TargetBranch,
			AssignedToID:   uuid.MustParse(branchID),
		}
	}

	t.Run("success - last open row flips the parent task", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: branchID,
			Role:     domain.RoleGeneralEmployee,
		}
		row := &task.TaskCompletion{
			ID:         uuid.New(),
			TaskID:     taskID,
			EmployeeID: uuid.MustParse(actor.UserID),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(branchTask(taskID), nil)

		deps.repo.EXPECT().
			FindCompletion(ctx, taskID.String(), actor.UserID).
			Return(row, nil)

		update := deps.repo.EXPECT().
			UpdateCompletion(ctx, row.ID.String(), true, gomock.Any()).
			Return(nil)

		count := deps.repo.EXPECT().
			CountOpenCompletions(ctx, taskID.String()).
			Return(int64(0), nil).
			After(update)

		deps.repo.EXPECT().
			SetTaskCompleted(ctx, taskID.String(), true, nil).
			Return(nil).
			After(count)

		err := deps.service.Complete(ctx, companyID, actor, taskID.String())
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - open rows remain, parent stays open", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: branchID,
			Role:     domain.RoleGeneralEmployee,
		}
		row := &task.TaskCompletion{
			ID:         uuid.New(),
			TaskID:     taskID,
			EmployeeID: uuid.MustParse(actor.UserID),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(branchTask(taskID), nil)

		deps.repo.EXPECT().
			FindCompletion(ctx, taskID.String(), actor.UserID).
			Return(row, nil)

		deps.repo.EXPECT().
			UpdateCompletion(ctx, row.ID.String(), true, gomock.Any()).
			Return(nil)

		deps.repo.EXPECT().
			CountOpenCompletions(ctx, taskID.String()).
			Return(int64(2), nil)

		err := deps.service.Complete(ctx, companyID, actor, taskID.String())
		assert.NoError(t, err)
	})

	t.Run("fail - employee outside the snapshot", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: branchID,
			Role:     domain.RoleGeneralEmployee,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(branchTask(taskID), nil)

		deps.repo.EXPECT().
			FindCompletion(ctx, taskID.String(), actor.UserID).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Complete(ctx, companyID, actor, taskID.String())
		assert.ErrorIs(t, err, taskerrors.ErrNotAssignee)
	})

	t.Run("fail - direct task belongs to someone else", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{
			Type:   domain.PrincipalEmployee,
			UserID: uuid.New().String(),
		}
		direct := &task.Task{
			ID:             taskID,
			CompanyID:      uuid.MustParse(companyID),
			AssignedToType: task.TargetEmployee,
			AssignedToID:   uuid.New(),
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(direct, nil)

		err := deps.service.Complete(ctx, companyID, actor, taskID.String())
		assert.ErrorIs(t, err, taskerrors.ErrNotAssignee)
	})

	t.Run("fail - already completed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: branchID,
		}
		done := branchTask(taskID)
		done.IsCompleted = true

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(done, nil)

		err := deps.service.Complete(ctx, companyID, actor, taskID.String())
		assert.ErrorIs(t, err, taskerrors.ErrTaskCompleted)
	})
}

func TestTaskService_Override(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New().String()

	t.Run("success - company override completes everything", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{Type: domain.PrincipalCompany, UserID: companyID}
		tk := &task.Task{
			ID:             taskID,
			CompanyID:      uuid.MustParse(companyID),
			AssignedToType: task.TargetBranch,
			AssignedToID:   uuid.MustParse(branchID),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(tk, nil)

		complete := deps.repo.EXPECT().
			CompleteAllCompletions(ctx, taskID.String()).
			Return(nil)

		deps.repo.EXPECT().
			SetTaskCompleted(ctx, taskID.String(), true, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, completed bool, completedByID *string) error {
				assert.NotNil(t, completedByID)
				assert.Equal(t, companyID, *completedByID)
				return nil
			}).
			After(complete)

		err := deps.service.Override(ctx, companyID, actor, taskID.String())
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("fail - manager of another branch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: uuid.New().String(),
			Role:     domain.RoleManager,
		}
		tk := &task.Task{
			ID:             taskID,
			CompanyID:      uuid.MustParse(companyID),
			AssignedToType: task.TargetBranch,
			AssignedToID:   uuid.MustParse(branchID),
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(tk, nil)

		err := deps.service.Override(ctx, companyID, actor, taskID.String())
		assert.ErrorIs(t, err, taskerrors.ErrNotManageable)
	})

	t.Run("fail - general employee cannot override", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: branchID,
			Role:     domain.RoleGeneralEmployee,
		}
		tk := &task.Task{
			ID:             taskID,
			CompanyID:      uuid.MustParse(companyID),
			AssignedToType: task.TargetBranch,
			AssignedToID:   uuid.MustParse(branchID),
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(tk, nil)

		err := deps.service.Override(ctx, companyID, actor, taskID.String())
		assert.ErrorIs(t, err, taskerrors.ErrNotManageable)
	})
}

func TestTaskService_Reopen(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success - resets the task and every fan-out row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		branchID := uuid.New()
		actor := domain.Actor{Type: domain.PrincipalCompany, UserID: companyID}
		tk := &task.Task{
			ID:             taskID,
			CompanyID:      uuid.MustParse(companyID),
			AssignedToType: task.TargetBranch,
			AssignedToID:   branchID,
			IsCompleted:    true,
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(tk, nil)

		reset := deps.repo.EXPECT().
			ResetCompletions(ctx, taskID.String()).
			Return(nil)

		deps.repo.EXPECT().
			SetTaskCompleted(ctx, taskID.String(), false, nil).
			Return(nil).
			After(reset)

		err := deps.service.Reopen(ctx, companyID, actor, taskID.String())
		assert.NoError(t, err)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success - fan-out rows removed before the task", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{Type: domain.PrincipalCompany, UserID: companyID}
		tk := &task.Task{
			ID:             taskID,
			CompanyID:      uuid.MustParse(companyID),
			AssignedToType: task.TargetBranch,
			AssignedToID:   uuid.New(),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(tk, nil)

		completions := deps.repo.EXPECT().
			DeleteCompletions(ctx, taskID.String()).
			Return(nil)

		deps.repo.EXPECT().
			Delete(ctx, companyID, taskID.String()).
			Return(nil).
			After(completions)

		err := deps.service.Delete(ctx, companyID, actor, taskID.String())
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("fail - unknown task", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		taskID := uuid.New()
		actor := domain.Actor{Type: domain.PrincipalCompany, UserID: companyID}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, taskID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, companyID, actor, taskID.String())
		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}
