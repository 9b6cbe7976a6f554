package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	employeeerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/employee/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/events"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/messaging/kafka"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/contextutil"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(companyID string) string {
	return EmployeeOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, actor domain.Actor, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID, branchID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, companyID string, actor domain.Actor, id string, req UpdateEmployeeProfileRequest) (EmployeeResponse, error)
	SetActive(ctx context.Context, companyID string, actor domain.Actor, id string, active bool) error
	ResetPassword(ctx context.Context, companyID string, actor domain.Actor, id, newPassword string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

// authorize applies the management scope rule to a target employee. Company
// principals manage the whole company; employee principals manage only
// strictly lower roles inside their own branch.
func authorize(actor domain.Actor, target *Employee) error {
	switch actor.Type {
	case domain.PrincipalCompany:
		return nil
	case domain.PrincipalEmployee:
		if actor.BranchID != target.BranchID.String() {
			return employeeerrors.ErrNotManageable
		}
		if !actor.Role.CanManage(target.Role) {
			return employeeerrors.ErrNotManageable
		}
		return nil
	default:
		return employeeerrors.ErrNotManageable
	}
}

// Create registers an employee with a generated employee code and queues the
// lifecycle event through the outbox, all in one transaction. Employee
// principals can only hire into their own branch, and only roles below
// their own.
func (s *service) Create(ctx context.Context, companyID string, actor domain.Actor, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("role", req.Role),
		zap.String("username", req.Username),
	)

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	branchID := req.BranchID
	if actor.Type == domain.PrincipalEmployee {
		if !actor.Role.CanManage(role) {
			return EmployeeResponse{}, employeeerrors.ErrNotManageable
		}
		branchID = actor.BranchID
	}
	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrBranchNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	pic := req.ProfilePicURL
	if pic == "" {
		pic = DefaultProfilePicURL
	}

	empl := &Employee{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(companyID),
		BranchID:      branchUUID,
		Username:      req.Username,
		Password:      string(hashed),
		FullName:      req.FullName,
		ProfilePicURL: pic,
		Role:          role,
		IsActive:      true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		branchActive, err := qtx.GetBranchActive(ctx, companyID, branchID)
		if err != nil {
			return err
		}
		if branchActive == nil {
			return employeeerrors.ErrBranchNotFound
		}
		if !*branchActive {
			return employeeerrors.ErrBranchInactive
		}

		if role == domain.RoleManager {
			managers, err := qtx.CountActiveManagers(ctx, branchID, "")
			if err != nil {
				return err
			}
			if managers > 0 {
				return employeeerrors.ErrManagerExists
			}
		}

		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, "employee_code")
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.Error(err))
			return err
		}
		empl.EmployeeCode = fmt.Sprintf("EMP-%06d", nextVal)

		if err := qtx.Create(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}

		if s.outbox != nil {
			event := events.EmployeeCreatedEvent{
				EventType:    "employee_created",
				RequestID:    rid,
				EmployeeID:   empl.ID.String(),
				BranchID:     branchID,
				CompanyID:    companyID,
				EmployeeRole: string(role),
				OccurredAt:   time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}

			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "employee",
				AggregateID:   empl.ID.String(),
				EventType:     event.EventType,
				Topic:         events.EmployeeCreatedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				s.logger.Error("create employee outbox persist failed",
					zap.String("employee_id", empl.ID.String()),
					zap.Error(err),
				)
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, companyID, branchID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("company_id", companyID),
		zap.String("branch_id", branchID),
	)
	employees, err := s.repo.FindAllByCompany(ctx, companyID, branchID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the stampede when the cache is cold.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptionsByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) UpdateProfile(ctx context.Context, companyID string, actor domain.Actor, id string, req UpdateEmployeeProfileRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee profile requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	var updated Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		// Everyone may edit their own profile.
		if actor.UserID != empl.ID.String() {
			if err := authorize(actor, empl); err != nil {
				return err
			}
		}

		empl.FullName = req.FullName
		if req.ProfilePicURL != "" {
			empl.ProfilePicURL = req.ProfilePicURL
		}

		if err := qtx.Update(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}
		updated = *empl
		return nil
	})
	if err != nil {
		s.logger.Error("update employee profile failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("update employee profile success", zap.String("employee_id", id))
	return mapToResponse(updated), nil
}

// SetActive flips a single employee. Reactivating a Manager re-checks the
// one-active-Manager rule inside the transaction.
func (s *service) SetActive(ctx context.Context, companyID string, actor domain.Actor, id string, active bool) error {
	s.logger.Debug("set employee status requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", id),
		zap.Bool("active", active),
	)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := authorize(actor, empl); err != nil {
			return err
		}

		if active && empl.Role == domain.RoleManager {
			managers, err := qtx.CountActiveManagers(ctx, empl.BranchID.String(), id)
			if err != nil {
				return err
			}
			if managers > 0 {
				return employeeerrors.ErrManagerExists
			}
		}

		return qtx.UpdateStatus(ctx, companyID, id, active)
	})
	if err != nil {
		s.logger.Error("set employee status failed",
			zap.String("employee_id", id),
			zap.Bool("active", active),
			zap.Error(err),
		)
		return err
	}

	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("set employee status success",
		zap.String("employee_id", id),
		zap.Bool("active", active),
	)
	return nil
}

func (s *service) ResetPassword(ctx context.Context, companyID string, actor domain.Actor, id, newPassword string) error {
	s.logger.Debug("reset employee password requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := authorize(actor, empl); err != nil {
			return err
		}

		return qtx.UpdatePassword(ctx, companyID, id, string(hashed))
	})
	if err != nil {
		s.logger.Error("reset employee password failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("reset employee password success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID.String(),
		CompanyID:     e.CompanyID.String(),
		BranchID:      e.BranchID.String(),
		Username:      e.Username,
		FullName:      e.FullName,
		ProfilePicURL: e.ProfilePicURL,
		Role:          string(e.Role),
		EmployeeCode:  e.EmployeeCode,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
