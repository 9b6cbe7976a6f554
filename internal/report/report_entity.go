package report

import (
	"time"

	"github.com/google/uuid"
)

type DailyReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_report_day"`
	ReportDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_daily_report_day"`
	ReportText string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DailyReport) TableName() string { return "daily_reports" }

// ReportWithEmployee joins the author's name in for company-wide listings
// and PDF exports.
type ReportWithEmployee struct {
	DailyReport
	EmployeeName string
}
