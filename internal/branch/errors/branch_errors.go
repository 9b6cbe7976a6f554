package brancherrors

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/apperror"
)

var (
	ErrBranchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Branch not found",
		http.StatusNotFound,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid branch ID",
		http.StatusBadRequest,
	)
	ErrNestingTooDeep = apperror.New(
		apperror.CodeInvalidInput,
		"A sub-branch cannot have its own sub-branches",
		http.StatusBadRequest,
	)
	ErrCannotModifyMain = apperror.New(
		apperror.CodeInvalidInput,
		"The main branch type cannot be changed",
		http.StatusBadRequest,
	)
	ErrParentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A sub-branch requires a parent branch",
		http.StatusBadRequest,
	)
)
