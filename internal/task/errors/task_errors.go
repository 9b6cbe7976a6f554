package taskerrors

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task ID",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid due date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrTargetRequired = apperror.New(
		apperror.CodeInvalidInput,
		"An assignment target is required",
		http.StatusBadRequest,
	)
	ErrTargetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment target not found",
		http.StatusNotFound,
	)
	ErrTargetInactive = apperror.New(
		apperror.CodeInvalidState,
		"The assignment target is deactivated",
		http.StatusConflict,
	)
	ErrNotAssignee = apperror.New(
		apperror.CodeForbidden,
		"You are not an assignee of this task",
		http.StatusForbidden,
	)
	ErrTaskCompleted = apperror.New(
		apperror.CodeConflict,
		"The task is already completed",
		http.StatusConflict,
	)
	ErrNotManageable = apperror.New(
		apperror.CodeForbidden,
		"You are not allowed to manage this task",
		http.StatusForbidden,
	)
)
