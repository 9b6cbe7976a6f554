package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetCompanyByUsername(ctx context.Context, username string) (*CompanyAccount, error)
	GetCompanyByID(ctx context.Context, id string) (*CompanyAccount, error)
	GetEmployeeByUsername(ctx context.Context, username string) (*EmployeeAccount, error)
	GetEmployeeByID(ctx context.Context, id string) (*EmployeeAccount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCompanyByUsername(ctx context.Context, username string) (*CompanyAccount, error) {
	var acc CompanyAccount
	err := r.db.WithContext(ctx).
		Table("companies").
		Where("username = ?", username).
		Take(&acc).Error
	return &acc, err
}

func (r *repository) GetCompanyByID(ctx context.Context, id string) (*CompanyAccount, error) {
	var acc CompanyAccount
	err := r.db.WithContext(ctx).
		Table("companies").
		Where("id = ?", id).
		Take(&acc).Error
	return &acc, err
}

func (r *repository) GetEmployeeByUsername(ctx context.Context, username string) (*EmployeeAccount, error) {
	var acc EmployeeAccount
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("username = ?", username).
		Take(&acc).Error
	return &acc, err
}

func (r *repository) GetEmployeeByID(ctx context.Context, id string) (*EmployeeAccount, error) {
	var acc EmployeeAccount
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", id).
		Take(&acc).Error
	return &acc, err
}
