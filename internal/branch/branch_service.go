package branch

import (
	"context"
	"time"

	brancherrors "github.com/Akhand-Replit/Akhand-office-v2/internal/branch/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=branch_service.go -destination=mock/branch_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateBranchRequest) (BranchResponse, error)
	GetAll(ctx context.Context, companyID string) ([]BranchResponse, error)
	GetByID(ctx context.Context, companyID, id string) (BranchResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateBranchRequest) (BranchResponse, error)
	PromoteMain(ctx context.Context, companyID, id string) error
	SetActive(ctx context.Context, companyID, id string, active bool) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("branch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branch.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create adds a branch, or a sub-branch when a parent is given. Nesting is
// one level deep: a sub-branch can never be a parent.
func (s *service) Create(ctx context.Context, companyID string, req CreateBranchRequest) (BranchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create branch requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("branch_name", req.BranchName),
	)

	b := &Branch{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(companyID),
		BranchName: req.BranchName,
		BranchType: TypeBranch,
		Location:   req.Location,
		IsActive:   true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if req.ParentBranchID != "" {
			parentID, err := uuid.Parse(req.ParentBranchID)
			if err != nil {
				return brancherrors.ErrInvalidBranchID
			}

			parent, err := qtx.FindByID(ctx, companyID, parentID.String())
			if err != nil {
				return mapRepositoryError(err)
			}
			if parent.BranchType == TypeSubBranch {
				return brancherrors.ErrNestingTooDeep
			}

			b.BranchType = TypeSubBranch
			b.ParentBranchID = &parentID
		}

		return qtx.Create(ctx, b)
	})
	if err != nil {
		s.logger.Error("create branch failed", zap.String("request_id", rid), zap.Error(err))
		return BranchResponse{}, err
	}

	s.logger.Info("create branch success",
		zap.String("request_id", rid),
		zap.String("branch_id", b.ID.String()),
		zap.String("branch_type", b.BranchType),
	)
	return mapToResponse(*b, 0), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]BranchResponse, error) {
	rows, err := s.repo.FindAll(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]BranchResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row.Branch, row.EmployeeCount)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (BranchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BranchResponse{}, brancherrors.ErrInvalidBranchID
	}
	b, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return BranchResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*b, 0), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateBranchRequest) (BranchResponse, error) {
	s.logger.Debug("update branch requested",
		zap.String("company_id", companyID),
		zap.String("branch_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return BranchResponse{}, brancherrors.ErrInvalidBranchID
	}

	var updated Branch
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		b, err := qtx.FindByID(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		b.BranchName = req.BranchName
		b.Location = req.Location

		if req.BranchType != "" && req.BranchType != b.BranchType {
			if b.IsMain {
				return brancherrors.ErrCannotModifyMain
			}
			switch req.BranchType {
			case TypeSubBranch:
				if req.ParentBranchID == "" {
					return brancherrors.ErrParentRequired
				}
				parentID, err := uuid.Parse(req.ParentBranchID)
				if err != nil || parentID == b.ID {
					return brancherrors.ErrInvalidBranchID
				}
				parent, err := qtx.FindByID(ctx, companyID, parentID.String())
				if err != nil {
					return mapRepositoryError(err)
				}
				if parent.BranchType == TypeSubBranch {
					return brancherrors.ErrNestingTooDeep
				}
				b.BranchType = TypeSubBranch
				b.ParentBranchID = &parentID
			case TypeBranch:
				b.BranchType = TypeBranch
				b.ParentBranchID = nil
			}
		}

		if err := qtx.Update(ctx, b); err != nil {
			return mapRepositoryError(err)
		}
		updated = *b
		return nil
	})
	if err != nil {
		s.logger.Error("update branch failed", zap.String("branch_id", id), zap.Error(err))
		return BranchResponse{}, err
	}

	s.logger.Info("update branch success", zap.String("branch_id", id))
	return mapToResponse(updated, 0), nil
}

// PromoteMain makes the branch the company's main branch, demoting the
// current one in the same transaction. Exactly one main branch survives.
func (s *service) PromoteMain(ctx context.Context, companyID, id string) error {
	s.logger.Debug("promote main branch requested",
		zap.String("company_id", companyID),
		zap.String("branch_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return brancherrors.ErrInvalidBranchID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		b, err := qtx.FindByID(ctx, companyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if b.IsMain {
			return nil
		}

		if err := qtx.DemoteMain(ctx, companyID); err != nil {
			return err
		}
		return qtx.PromoteMain(ctx, companyID, id)
	})
	if err != nil {
		s.logger.Error("promote main branch failed", zap.String("branch_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("promote main branch success", zap.String("branch_id", id))
	return nil
}

// SetActive flips the branch, its employees, its sub-branches, and their
// employees in one transaction. Repeating the call with the same flag is a
// no-op at the row level.
func (s *service) SetActive(ctx context.Context, companyID, id string, active bool) error {
	s.logger.Debug("set branch status requested",
		zap.String("company_id", companyID),
		zap.String("branch_id", id),
		zap.Bool("active", active),
	)

	if _, err := uuid.Parse(id); err != nil {
		return brancherrors.ErrInvalidBranchID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, companyID, id); err != nil {
			return mapRepositoryError(err)
		}

		subIDs, err := qtx.FindSubBranchIDs(ctx, companyID, id)
		if err != nil {
			return err
		}
		ids := append([]string{id}, subIDs...)

		if err := qtx.UpdateStatusBatch(ctx, companyID, ids, active); err != nil {
			return err
		}
		return qtx.CascadeEmployeeStatus(ctx, ids, active)
	})
	if err != nil {
		s.logger.Error("set branch status failed",
			zap.String("branch_id", id),
			zap.Bool("active", active),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("set branch status success",
		zap.String("branch_id", id),
		zap.Bool("active", active),
	)
	return nil
}

func mapToResponse(b Branch, employeeCount int64) BranchResponse {
	resp := BranchResponse{
		ID:            b.ID.String(),
		CompanyID:     b.CompanyID.String(),
		BranchName:    b.BranchName,
		BranchType:    b.BranchType,
		Location:      b.Location,
		IsActive:      b.IsActive,
		IsMain:        b.IsMain,
		EmployeeCount: employeeCount,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.ParentBranchID != nil {
		resp.ParentBranchID = b.ParentBranchID.String()
	}
	return resp
}
