package employee

import (
	"time"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"

	"github.com/google/uuid"
)

// DefaultProfilePicURL is used when no picture is supplied at creation.
const DefaultProfilePicURL = "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp&f=y"

type Employee struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_code"`
	BranchID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	Username      string      `gorm:"type:varchar(50);uniqueIndex:uq_employee_username;not null"`
	Password      string      `gorm:"type:varchar(255);not null"`
	FullName      string      `gorm:"type:varchar(100);not null"`
	ProfilePicURL string      `gorm:"type:text"`
	Role          domain.Role `gorm:"type:varchar(30);not null"`
	EmployeeCode  string      `gorm:"type:varchar(20);uniqueIndex:uq_employee_code;not null"`
	IsActive      bool        `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Employee) TableName() string { return "employees" }
