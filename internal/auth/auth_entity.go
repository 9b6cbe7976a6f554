package auth

import (
	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"

	"github.com/google/uuid"
)

// CompanyAccount is the slice of the companies table the login flow needs.
type CompanyAccount struct {
	ID          uuid.UUID
	Username    string
	Password    string
	CompanyName string
	IsActive    bool
}

// EmployeeAccount is the slice of the employees table the login flow needs.
type EmployeeAccount struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	BranchID  uuid.UUID
	Username  string
	Password  string
	FullName  string
	Role      domain.Role
	IsActive  bool
}
