package companyerrors

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrCompanyNameTaken = apperror.New(
		apperror.CodeConflict,
		"A company with the same name already exists",
		http.StatusConflict,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already in use",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
)
