package employee

import (
	"context"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAllByCompany(ctx context.Context, companyID, branchID string) ([]Employee, error)
	FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	GetBranchActive(ctx context.Context, companyID, branchID string) (*bool, error)
	CountActiveManagers(ctx context.Context, branchID, excludeID string) (int64, error)
	Update(ctx context.Context, e *Employee) error
	UpdateStatus(ctx context.Context, companyID, id string, active bool) error
	UpdatePassword(ctx context.Context, companyID, id, passwordHash string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID, branchID string) ([]Employee, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}

	var employees []Employee
	err := q.Order("full_name ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

// GetBranchActive returns nil when the branch does not exist in the company.
func (r *repository) GetBranchActive(ctx context.Context, companyID, branchID string) (*bool, error) {
	var flags []bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT is_active FROM branches WHERE id = ? AND company_id = ?
	`, branchID, companyID).Scan(&flags).Error
	if err != nil || len(flags) == 0 {
		return nil, err
	}
	return &flags[0], nil
}

func (r *repository) CountActiveManagers(ctx context.Context, branchID, excludeID string) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("branch_id = ?", branchID).
		Where("role = ?", "Manager").
		Where("is_active = ?", true)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) UpdateStatus(ctx context.Context, companyID, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *repository) UpdatePassword(ctx context.Context, companyID, id, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}
