package branch

import (
	"context"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=branch_repo.go -destination=mock/branch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, b *Branch) error
	FindAll(ctx context.Context, companyID string) ([]BranchWithCount, error)
	FindByID(ctx context.Context, companyID, id string) (*Branch, error)
	FindMain(ctx context.Context, companyID string) (*Branch, error)
	FindSubBranchIDs(ctx context.Context, companyID, parentID string) ([]string, error)
	Update(ctx context.Context, b *Branch) error
	UpdateStatusBatch(ctx context.Context, companyID string, ids []string, active bool) error
	CascadeEmployeeStatus(ctx context.Context, branchIDs []string, active bool) error
	DemoteMain(ctx context.Context, companyID string) error
	PromoteMain(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, b *Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string) ([]BranchWithCount, error) {
	var rows []BranchWithCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT b.*, COUNT(e.id) AS employee_count
		FROM branches b
		LEFT JOIN employees e ON e.branch_id = b.id
		WHERE b.company_id = ?
		GROUP BY b.id
		ORDER BY b.is_main DESC, b.branch_name ASC
	`, companyID).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) FindMain(ctx context.Context, companyID string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&b, "is_main = ?", true).Error
	return &b, err
}

func (r *repository) FindSubBranchIDs(ctx context.Context, companyID, parentID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Branch{}).
		Scopes(tenant.Scope(companyID)).
		Where("parent_branch_id = ?", parentID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) Update(ctx context.Context, b *Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) UpdateStatusBatch(ctx context.Context, companyID string, ids []string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&Branch{}).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Update("is_active", active).Error
}

func (r *repository) CascadeEmployeeStatus(ctx context.Context, branchIDs []string, active bool) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE employees
		SET is_active = ?, updated_at = NOW()
		WHERE branch_id IN ?
	`, active, branchIDs).Error
}

func (r *repository) DemoteMain(ctx context.Context, companyID string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE branches
		SET is_main = FALSE, branch_type = 'Branch', updated_at = NOW()
		WHERE company_id = ? AND is_main = TRUE
	`, companyID).Error
}

func (r *repository) PromoteMain(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE branches
		SET is_main = TRUE, branch_type = 'Main', parent_branch_id = NULL, updated_at = NOW()
		WHERE company_id = ? AND id = ?
	`, companyID, id).Error
}
