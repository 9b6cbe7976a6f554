package company

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfilePicURL is used when no picture is supplied at creation.
const DefaultProfilePicURL = "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp&f=y"

type Company struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName   string    `gorm:"type:varchar(100);uniqueIndex:uq_company_name;not null"`
	Username      string    `gorm:"type:varchar(50);uniqueIndex:uq_company_username;not null"`
	Password      string    `gorm:"type:varchar(255);not null"`
	ProfilePicURL string    `gorm:"type:text"`
	IsActive      bool      `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Company) TableName() string { return "companies" }
