package report

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Submit always writes for the calling employee; nobody files a report on
// someone else's behalf.
func (h *Handler) Submit(c *gin.Context) {
	employeeID := c.GetString("user_id")

	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit report validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListOwn(c *gin.Context) {
	employeeID := c.GetString("user_id")

	resp, err := h.service.ListOwn(c.Request.Context(), employeeID, c.Query("from"), c.Query("to"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListCompany(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.ListCompany(
		c.Request.Context(),
		companyID,
		c.Query("branch_id"),
		c.Query("employee_id"),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// ExportPDF streams the PDF. Employees always export their own range; the
// company picks any employee via the query parameter.
func (h *Handler) ExportPDF(c *gin.Context) {
	companyID := c.GetString("company_id")

	employeeID := c.Query("employee_id")
	if c.GetString("user_type") == string(domain.PrincipalEmployee) {
		employeeID = c.GetString("user_id")
	}

	pdf, filename, err := h.service.ExportPDF(c.Request.Context(), companyID, employeeID, c.Query("from"), c.Query("to"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
