package company

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindActive(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	FindByUsername(ctx context.Context, username string) (*Company, error)
	Update(ctx context.Context, c *Company) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateStatus(ctx context.Context, id string, active bool) error
	CascadeBranchStatus(ctx context.Context, companyID string, active bool) error
	CascadeEmployeeStatus(ctx context.Context, companyID string, active bool) error
	CreateMainBranch(ctx context.Context, branchID, companyID uuid.UUID, branchName string) error
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

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).
		Order("company_name ASC").
		Find(&companies).Error
	return companies, err
}

func (r *repository) FindActive(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("company_name ASC").
		Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "username = ?", username).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// CascadeBranchStatus flips every branch of the company, the first step of
// the downward cascade.
func (r *repository) CascadeBranchStatus(ctx context.Context, companyID string, active bool) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE branches
		SET is_active = ?, updated_at = NOW()
		WHERE company_id = ?
	`, active, companyID).Error
}

// CascadeEmployeeStatus flips every employee in every branch of the company.
func (r *repository) CascadeEmployeeStatus(ctx context.Context, companyID string, active bool) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE employees
		SET is_active = ?, updated_at = NOW()
		WHERE branch_id IN (SELECT id FROM branches WHERE company_id = ?)
	`, active, companyID).Error
}

// CreateMainBranch bootstraps the company's main branch. Raw insert on the
// branches table keeps the modules decoupled.
func (r *repository) CreateMainBranch(ctx context.Context, branchID, companyID uuid.UUID, branchName string) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO branches (id, company_id, branch_name, branch_type, location, is_active, is_main, created_at, updated_at)
		VALUES (?, ?, ?, 'Main', '', TRUE, TRUE, NOW(), NOW())
	`, branchID, companyID, branchName).Error
}
