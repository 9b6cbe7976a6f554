package report

import (
	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RequirePrincipal(domain.PrincipalEmployee),
			middleware.RBACAuthorize(rbacService, "report", "create"),
			handler.Submit,
		)

		reports.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePrincipal(domain.PrincipalEmployee),
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.ListOwn,
		)

		reports.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePrincipal(domain.PrincipalCompany, domain.PrincipalAdmin),
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.ListCompany,
		)

		reports.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "report", "export"),
			handler.ExportPDF,
		)
	}
}
