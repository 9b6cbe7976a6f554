package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/employee"
	employeeerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/employee/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/events"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/messaging/kafka"

	employeeMock "github.com/Akhand-Replit/Akhand-office-v2/internal/employee/mock"
	kafkaMock "github.com/Akhand-Replit/Akhand-office-v2/internal/messaging/kafka/mock"
	counterMock "github.com/Akhand-Replit/Akhand-office-v2/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(gormDB, repo, counterRepo, outboxRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redisMock: redisMock,
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New().String()
	companyActor := domain.Actor{Type: domain.PrincipalCompany, UserID: companyID}

	t.Run("success - manager with generated code and outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{
			Username: "mgr.dhaka",
			Password: "secret123",
			FullName: "Rahim Uddin",
			Role:     "Manager",
			BranchID: branchID,
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			GetBranchActive(ctx, companyID, branchID).
			Return(boolPtr(true), nil)

		deps.repo.EXPECT().
			CountActiveManagers(ctx, branchID, "").
			Return(int64(0), nil)

		deps.counter.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.counter)

		deps.counter.EXPECT().
			GetNextValue(ctx, companyID, "employee_code").
			Return(int64(7), nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000007", e.EmployeeCode)
				assert.Equal(t, domain.RoleManager, e.Role)
				assert.Equal(t, branchID, e.BranchID.String())
				assert.True(t, e.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(req.Password)))
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeCreatedTopic, evt.Topic)
				assert.Equal(t, "employee_created", evt.EventType)
				assert.Equal(t, kafka.OutboxStatusPending, evt.Status)

				var payload events.EmployeeCreatedEvent
				assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, branchID, payload.BranchID)
				assert.Equal(t, "Manager", payload.EmployeeRole)
				return nil
			})

		deps.redisMock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, companyActor, req)
		assert.NoError(t, err)
		assert.Equal(t, "EMP-000007", resp.EmployeeCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("fail - branch already has an active manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{
			Username: "mgr.two",
			Password: "secret123",
			FullName: "Second Manager",
			Role:     "Manager",
			BranchID: branchID,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			GetBranchActive(ctx, companyID, branchID).
			Return(boolPtr(true), nil)

		deps.repo.EXPECT().
			CountActiveManagers(ctx, branchID, "").
			Return(int64(1), nil)

		_, err := deps.service.Create(ctx, companyID, companyActor, req)
		assert.ErrorIs(t, err, employeeerrors.ErrManagerExists)
	})

	t.Run("fail - inactive branch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{
			Username: "ge.one",
			Password: "secret123",
			FullName: "New Hire",
			Role:     "General Employee",
			BranchID: branchID,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			GetBranchActive(ctx, companyID, branchID).
			Return(boolPtr(false), nil)

		_, err := deps.service.Create(ctx, companyID, companyActor, req)
		assert.ErrorIs(t, err, employeeerrors.ErrBranchInactive)
	})

	t.Run("fail - manager cannot hire another manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: branchID,
			Role:     domain.RoleManager,
		}
		req := employee.CreateEmployeeRequest{
			Username: "mgr.peer",
			Password: "secret123",
			FullName: "Peer Manager",
			Role:     "Manager",
		}

		_, err := deps.service.Create(ctx, companyID, actor, req)
		assert.ErrorIs(t, err, employeeerrors.ErrNotManageable)
	})

	t.Run("success - manager hires into own branch regardless of request", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		actorBranch := uuid.New().String()
		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			UserID:   uuid.New().String(),
			BranchID: actorBranch,
			Role:     domain.RoleManager,
		}
		req := employee.CreateEmployeeRequest{
			Username: "ge.two",
			Password: "secret123",
			FullName: "New Hire",
			Role:     "General Employee",
			BranchID: uuid.New().String(),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			GetBranchActive(ctx, companyID, actorBranch).
			Return(boolPtr(true), nil)

		deps.counter.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.counter)

		deps.counter.EXPECT().
			GetNextValue(ctx, companyID, "employee_code").
			Return(int64(8), nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, actorBranch, e.BranchID.String())
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)

		deps.redisMock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, actor, req)
		assert.NoError(t, err)
		assert.Equal(t, actorBranch, resp.BranchID)
	})

	t.Run("fail - unknown role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{
			Username: "x",
			Password: "secret123",
			FullName: "X",
			Role:     "Supervisor",
			BranchID: branchID,
		}

		_, err := deps.service.Create(ctx, companyID, companyActor, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
	})
}

func TestEmployeeService_SetActive(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New()
	targetID := uuid.New()

	t.Run("success - company deactivates an employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID.String()).
			Return(&employee.Employee{
				ID:       targetID,
				BranchID: branchID,
				Role:     domain.RoleGeneralEmployee,
				IsActive: true,
			}, nil)

		deps.repo.EXPECT().
			UpdateStatus(ctx, companyID, targetID.String(), false).
			Return(nil)

		deps.redisMock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		actor := domain.Actor{Type: domain.PrincipalCompany}
		err := deps.service.SetActive(ctx, companyID, actor, targetID.String(), false)
		assert.NoError(t, err)
	})

	t.Run("fail - reactivating a second manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID.String()).
			Return(&employee.Employee{
				ID:       targetID,
				BranchID: branchID,
				Role:     domain.RoleManager,
				IsActive: false,
			}, nil)

		deps.repo.EXPECT().
			CountActiveManagers(ctx, branchID.String(), targetID.String()).
			Return(int64(1), nil)

		actor := domain.Actor{Type: domain.PrincipalCompany}
		err := deps.service.SetActive(ctx, companyID, actor, targetID.String(), true)
		assert.ErrorIs(t, err, employeeerrors.ErrManagerExists)
	})

	t.Run("fail - asst manager cannot touch a manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID.String()).
			Return(&employee.Employee{
				ID:       targetID,
				BranchID: branchID,
				Role:     domain.RoleManager,
				IsActive: true,
			}, nil)

		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			BranchID: branchID.String(),
			Role:     domain.RoleAsstManager,
		}
		err := deps.service.SetActive(ctx, companyID, actor, targetID.String(), false)
		assert.ErrorIs(t, err, employeeerrors.ErrNotManageable)
	})

	t.Run("fail - no cross-branch management", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID.String()).
			Return(&employee.Employee{
				ID:       targetID,
				BranchID: branchID,
				Role:     domain.RoleGeneralEmployee,
				IsActive: true,
			}, nil)

		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			BranchID: uuid.New().String(),
			Role:     domain.RoleManager,
		}
		err := deps.service.SetActive(ctx, companyID, actor, targetID.String(), false)
		assert.ErrorIs(t, err, employeeerrors.ErrNotManageable)
	})
}

func TestEmployeeService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New()
	targetID := uuid.New()

	t.Run("success - manager resets a general employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID.String()).
			Return(&employee.Employee{
				ID:       targetID,
				BranchID: branchID,
				Role:     domain.RoleGeneralEmployee,
			}, nil)

		deps.repo.EXPECT().
			UpdatePassword(ctx, companyID, targetID.String(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, companyID, id, passwordHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("freshpass1")))
				return nil
			})

		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			BranchID: branchID.String(),
			Role:     domain.RoleManager,
		}
		err := deps.service.ResetPassword(ctx, companyID, actor, targetID.String(), "freshpass1")
		assert.NoError(t, err)
	})

	t.Run("fail - general employee cannot reset anyone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID.String()).
			Return(&employee.Employee{
				ID:       targetID,
				BranchID: branchID,
				Role:     domain.RoleGeneralEmployee,
			}, nil)

		actor := domain.Actor{
			Type:     domain.PrincipalEmployee,
			BranchID: branchID.String(),
			Role:     domain.RoleGeneralEmployee,
		}
		err := deps.service.ResetPassword(ctx, companyID, actor, targetID.String(), "freshpass1")
		assert.ErrorIs(t, err, employeeerrors.ErrNotManageable)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := employee.GetEmployeeOptionsKey(companyID)

	t.Run("success - cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []employee.EmployeeResponse{
			{ID: uuid.New().String(), FullName: "Cached Person", Role: "General Employee"},
		}
		data, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(cacheKey).SetVal(string(data))

		resp, err := deps.service.GetOptions(ctx, companyID)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Cached Person", resp[0].FullName)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("success - cache miss loads and caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		emps := []employee.Employee{
			{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), BranchID: uuid.New(), FullName: "Fresh Person", Role: domain.RoleGeneralEmployee, IsActive: true},
		}

		deps.redisMock.ExpectGet(cacheKey).RedisNil()

		deps.repo.EXPECT().
			FindOptionsByCompany(ctx, companyID).
			Return(emps, nil)

		expected, _ := json.Marshal([]employee.EmployeeResponse{
			{
				ID:        emps[0].ID.String(),
				CompanyID: companyID,
				BranchID:  emps[0].BranchID.String(),
				FullName:  "Fresh Person",
				Role:      "General Employee",
				IsActive:  true,
				CreatedAt: time.Time{}.Format(time.RFC3339),
			},
		})
		deps.redisMock.ExpectSet(cacheKey, expected, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Fresh Person", resp[0].FullName)
	})
}
