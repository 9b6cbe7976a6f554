package employeeerrors

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already in use",
		http.StatusConflict,
	)
	ErrEmployeeCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Employee code is already in use",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown employee role",
		http.StatusBadRequest,
	)
	ErrBranchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Branch not found",
		http.StatusNotFound,
	)
	ErrBranchInactive = apperror.New(
		apperror.CodeInvalidInput,
		"Branch is inactive",
		http.StatusBadRequest,
	)
	ErrManagerExists = apperror.New(
		apperror.CodeConflict,
		"The branch already has an active Manager",
		http.StatusConflict,
	)
	ErrNotManageable = apperror.New(
		apperror.CodeForbidden,
		"You are not allowed to manage this employee",
		http.StatusForbidden,
	)
)
