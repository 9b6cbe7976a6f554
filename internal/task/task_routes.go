package task

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
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ContextLogger(logger))
	{
		tasks.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "task", "read"),
			handler.GetAll,
		)

		tasks.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePrincipal(domain.PrincipalEmployee),
			middleware.RBACAuthorize(rbacService, "task", "read"),
			handler.GetMine,
		)

		tasks.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "task", "read"),
			handler.GetByID,
		)

		tasks.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "task", "create"),
			handler.Assign,
		)

		tasks.POST("/:id/complete",
			middleware.RateLimitByUser(1, 5),
			middleware.RequirePrincipal(domain.PrincipalEmployee),
			middleware.RBACAuthorize(rbacService, "task", "update"),
			handler.Complete,
		)

		tasks.POST("/:id/override",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "task", "update"),
			handler.Override,
		)

		tasks.POST("/:id/reopen",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "task", "update"),
			handler.Reopen,
		)

		tasks.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "task", "delete"),
			handler.Delete,
		)
	}
}
