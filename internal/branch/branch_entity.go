package branch

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeMain      = "Main"
	TypeBranch    = "Branch"
	TypeSubBranch = "Sub-Branch"
)

type Branch struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	BranchName     string     `gorm:"type:varchar(100);not null"`
	BranchType     string     `gorm:"type:varchar(20);not null"`
	ParentBranchID *uuid.UUID `gorm:"type:uuid"`
	Location       string     `gorm:"type:text"`
	IsActive       bool       `gorm:"default:true"`
	IsMain         bool       `gorm:"default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Branch) TableName() string { return "branches" }

// BranchWithCount carries the employee headcount alongside the row for
// listing.
type BranchWithCount struct {
	Branch
	EmployeeCount int64
}
