package message

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/middleware"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/apperror"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("message.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("message.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("message request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http send message validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Send(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// List returns the admin's view of all conversations or the calling
// company's own conversation, depending on who asks.
func (h *Handler) List(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var (
		resp []MessageResponse
		err  error
	)
	if actor.Type == domain.PrincipalAdmin {
		resp, err = h.service.ListForAdmin(c.Request.Context(), c.Query("company_id"))
	} else {
		resp, err = h.service.ListForCompany(c.Request.Context(), c.GetString("company_id"))
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, UnreadCountResponse{Unread: count}, nil)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.MarkRead(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "is_read": true}, nil)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), middleware.ActorFromContext(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true}, nil)
}
