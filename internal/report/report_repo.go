package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Upsert(ctx context.Context, r *DailyReport) error
	FindByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]DailyReport, error)
	FindByCompany(ctx context.Context, companyID, branchID, employeeID string, from, to time.Time) ([]ReportWithEmployee, error)
	GetEmployeeName(ctx context.Context, companyID, employeeID string) (string, error)
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

// Upsert keeps exactly one row per employee and day; a second submit for the
// same day replaces the text. The conflict target is the unique
// (employee_id, report_date) index.
func (r *repository) Upsert(ctx context.Context, rep *DailyReport) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO daily_reports (id, employee_id, report_date, report_text, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
		ON CONFLICT (employee_id, report_date)
		DO UPDATE SET report_text = EXCLUDED.report_text, updated_at = NOW()
		RETURNING id, updated_at
	`, rep.ID, rep.EmployeeID, rep.ReportDate, rep.ReportText).
		Row().Scan(&rep.ID, &rep.UpdatedAt)
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]DailyReport, error) {
	var reports []DailyReport
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("report_date BETWEEN ? AND ?", from, to).
		Order("report_date ASC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByCompany(ctx context.Context, companyID, branchID, employeeID string, from, to time.Time) ([]ReportWithEmployee, error) {
	q := r.db.WithContext(ctx).
		Table("daily_reports AS r").
		Select("r.*, e.full_name AS employee_name").
		Joins("JOIN employees e ON e.id = r.employee_id").
		Where("e.company_id = ?", companyID).
		Where("r.report_date BETWEEN ? AND ?", from, to)
	if branchID != "" {
		q = q.Where("e.branch_id = ?", branchID)
	}
	if employeeID != "" {
		q = q.Where("r.employee_id = ?", employeeID)
	}

	var rows []ReportWithEmployee
	err := q.Order("r.report_date ASC, e.full_name ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) GetEmployeeName(ctx context.Context, companyID, employeeID string) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("full_name").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Scan(&name).Error
	return name, err
}
