package company

import (
	"context"
	"errors"
	"time"

	companyerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/company/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	UpdateProfile(ctx context.Context, id string, req UpdateCompanyProfileRequest) (CompanyResponse, error)
	SetActive(ctx context.Context, id string, active bool) error
	ResetPassword(ctx context.Context, id string, newPassword string) error
	ChangePassword(ctx context.Context, id string, currentPassword, newPassword string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create registers a company and bootstraps its active Main branch in the
// same transaction.
func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create company requested",
		zap.String("request_id", rid),
		zap.String("company_name", req.CompanyName),
		zap.String("username", req.Username),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create company hash password failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	pic := req.ProfilePicURL
	if pic == "" {
		pic = DefaultProfilePicURL
	}

	c := &Company{
		ID:            uuid.New(),
		CompanyName:   req.CompanyName,
		Username:      req.Username,
		Password:      string(hashed),
		ProfilePicURL: pic,
		IsActive:      true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.Create(ctx, c); err != nil {
			return mapRepositoryError(err)
		}

		mainBranchName := req.CompanyName + " Main Branch"
		if err := qtx.CreateMainBranch(ctx, uuid.New(), c.ID, mainBranchName); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Error("create company failed", zap.String("request_id", rid), zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("create company success",
		zap.String("request_id", rid),
		zap.String("company_id", c.ID.String()),
	)
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(companies), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) UpdateProfile(ctx context.Context, id string, req UpdateCompanyProfileRequest) (CompanyResponse, error) {
	s.logger.Debug("update company profile requested", zap.String("company_id", id))

	var updated Company
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		c, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		c.CompanyName = req.CompanyName
		if req.ProfilePicURL != "" {
			c.ProfilePicURL = req.ProfilePicURL
		}

		if err := qtx.Update(ctx, c); err != nil {
			return mapRepositoryError(err)
		}
		updated = *c
		return nil
	})
	if err != nil {
		s.logger.Error("update company profile failed", zap.String("company_id", id), zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("update company profile success", zap.String("company_id", id))
	return mapToResponse(updated), nil
}

// SetActive flips the company flag and cascades the same flag to every
// branch and every employee underneath, in one transaction. Reactivation
// cascades unconditionally, mirroring deactivation.
func (s *service) SetActive(ctx context.Context, id string, active bool) error {
	s.logger.Debug("set company status requested",
		zap.String("company_id", id),
		zap.Bool("active", active),
	)

	if _, err := uuid.Parse(id); err != nil {
		return companyerrors.ErrInvalidCompanyID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}
		if err := qtx.UpdateStatus(ctx, id, active); err != nil {
			return err
		}
		if err := qtx.CascadeBranchStatus(ctx, id, active); err != nil {
			return err
		}
		return qtx.CascadeEmployeeStatus(ctx, id, active)
	})
	if err != nil {
		s.logger.Error("set company status failed",
			zap.String("company_id", id),
			zap.Bool("active", active),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("set company status success",
		zap.String("company_id", id),
		zap.Bool("active", active),
	)
	return nil
}

func (s *service) ResetPassword(ctx context.Context, id string, newPassword string) error {
	s.logger.Debug("reset company password requested", zap.String("company_id", id))

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if _, err := qtx.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}
		return qtx.UpdatePassword(ctx, id, string(hashed))
	})
	if err != nil {
		s.logger.Error("reset company password failed", zap.String("company_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("reset company password success", zap.String("company_id", id))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, id string, currentPassword, newPassword string) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(currentPassword)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return companyerrors.ErrWrongPassword
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		return err
	}

	s.logger.Info("change company password success", zap.String("company_id", id))
	return nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID.String(),
		CompanyName:   c.CompanyName,
		Username:      c.Username,
		ProfilePicURL: c.ProfilePicURL,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res
}
