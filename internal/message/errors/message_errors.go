package messageerrors

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/apperror"
)

var (
	ErrMessageNotFound = apperror.New(
		apperror.CodeNotFound,
		"Message not found",
		http.StatusNotFound,
	)
	ErrInvalidMessageID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid message ID",
		http.StatusBadRequest,
	)
	ErrReceiverRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A receiver is required",
		http.StatusBadRequest,
	)
	ErrReceiverNotFound = apperror.New(
		apperror.CodeNotFound,
		"Receiver not found",
		http.StatusNotFound,
	)
	ErrNotParticipant = apperror.New(
		apperror.CodeForbidden,
		"You are not a participant of this conversation",
		http.StatusForbidden,
	)
)
