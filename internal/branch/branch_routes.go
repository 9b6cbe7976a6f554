package branch

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
	branches := r.Group("/branches")
	branches.Use(middleware.AuthMiddleware())
	branches.Use(middleware.ContextLogger(logger))
	branches.Use(middleware.RequirePrincipal(domain.PrincipalCompany))
	{
		branches.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "branch", "read"),
			handler.GetAll,
		)

		branches.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "branch", "read"),
			handler.GetByID,
		)

		branches.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "branch", "create"),
			handler.Create,
		)

		branches.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "branch", "update"),
			handler.Update,
		)

		branches.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "branch", "status"),
			handler.SetStatus,
		)

		branches.POST("/:id/promote-main",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "branch", "update"),
			handler.PromoteMain,
		)
	}
}
