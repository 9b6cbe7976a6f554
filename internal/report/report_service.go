package report

import (
	"context"
	"fmt"
	"time"

	reporterrors "github.com/Akhand-Replit/Akhand-office-v2/internal/report/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitReportRequest) (ReportResponse, error)
	ListOwn(ctx context.Context, employeeID, from, to string) ([]ReportResponse, error)
	ListCompany(ctx context.Context, companyID, branchID, employeeID, from, to string) ([]ReportResponse, error)
	ExportPDF(ctx context.Context, companyID, employeeID, from, to string) ([]byte, string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService needs no database handle of its own: the upsert is a single
// atomic statement, so there is nothing to wrap in a transaction.
func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

// Submit writes the report for the day. The upsert makes a second submit for
// the same day replace the earlier text instead of failing or duplicating.
func (s *service) Submit(ctx context.Context, employeeID string, req SubmitReportRequest) (ReportResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	day, err := time.Parse(dateLayout, req.ReportDate)
	if err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidDate
	}

	rep := &DailyReport{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		ReportDate: day,
		ReportText: req.ReportText,
	}

	if err := s.repo.Upsert(ctx, rep); err != nil {
		s.logger.Error("submit report failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return ReportResponse{}, err
	}

	s.logger.Info("submit report success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("report_date", req.ReportDate),
	)
	return ReportResponse{
		ID:         rep.ID.String(),
		EmployeeID: employeeID,
		ReportDate: rep.ReportDate.Format(dateLayout),
		ReportText: rep.ReportText,
		UpdatedAt:  rep.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (s *service) ListOwn(ctx context.Context, employeeID, from, to string) ([]ReportResponse, error) {
	fromDay, toDay, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	reports, err := s.repo.FindByEmployee(ctx, employeeID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	res := make([]ReportResponse, len(reports))
	for i, r := range reports {
		res[i] = ReportResponse{
			ID:         r.ID.String(),
			EmployeeID: r.EmployeeID.String(),
			ReportDate: r.ReportDate.Format(dateLayout),
			ReportText: r.ReportText,
			UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
		}
	}
	return res, nil
}

func (s *service) ListCompany(ctx context.Context, companyID, branchID, employeeID, from, to string) ([]ReportResponse, error) {
	fromDay, toDay, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByCompany(ctx, companyID, branchID, employeeID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	res := make([]ReportResponse, len(rows))
	for i, r := range rows {
		res[i] = ReportResponse{
			ID:           r.ID.String(),
			EmployeeID:   r.EmployeeID.String(),
			EmployeeName: r.EmployeeName,
			ReportDate:   r.ReportDate.Format(dateLayout),
			ReportText:   r.ReportText,
			UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
		}
	}
	return res, nil
}

// ExportPDF renders one employee's reports for a date range, grouped by
// month.
func (s *service) ExportPDF(ctx context.Context, companyID, employeeID, from, to string) ([]byte, string, error) {
	fromDay, toDay, err := parseRange(from, to)
	if err != nil {
		return nil, "", err
	}

	name, err := s.repo.GetEmployeeName(ctx, companyID, employeeID)
	if err != nil {
		return nil, "", err
	}
	if name == "" {
		return nil, "", reporterrors.ErrEmployeeNotFound
	}

	rows, err := s.repo.FindByCompany(ctx, companyID, "", employeeID, fromDay, toDay)
	if err != nil {
		return nil, "", err
	}

	lines := []string{
		"Daily Reports",
		fmt.Sprintf("Employee: %s", name),
		fmt.Sprintf("Period: %s to %s", fromDay.Format(dateLayout), toDay.Format(dateLayout)),
	}

	currentMonth := ""
	for _, r := range rows {
		month := r.ReportDate.Format("January 2006")
		if month != currentMonth {
			currentMonth = month
			lines = append(lines, "", month)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", r.ReportDate.Format("02 Jan"), r.ReportText))
	}
	if len(rows) == 0 {
		lines = append(lines, "", "No reports in this period.")
	}

	pdf, err := buildReportPDF(lines)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reports_%s_%s_%s.pdf", employeeID, fromDay.Format("20060102"), toDay.Format("20060102"))
	s.logger.Info("export reports pdf success",
		zap.String("employee_id", employeeID),
		zap.Int("report_count", len(rows)),
	)
	return pdf, filename, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	fromDay, err := time.Parse(dateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDate
	}
	toDay, err := time.Parse(dateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDate
	}
	if fromDay.After(toDay) {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
	}
	return fromDay, toDay, nil
}
