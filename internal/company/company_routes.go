package company

import (
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
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.GetAll,
		)

		companies.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.GetMe,
		)

		companies.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.GetById,
		)

		companies.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "company", "create"),
			handler.Create,
		)

		companies.PUT("/me",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.UpdateProfile,
		)

		companies.PUT("/me/password",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.ChangePassword,
		)

		companies.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "company", "status"),
			handler.SetStatus,
		)

		companies.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "company", "status"),
			handler.ResetPassword,
		)
	}
}
