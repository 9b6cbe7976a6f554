package message

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
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	messages.Use(middleware.ContextLogger(logger))
	messages.Use(middleware.RequirePrincipal(domain.PrincipalAdmin, domain.PrincipalCompany))
	{
		messages.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "message", "read"),
			handler.List,
		)

		messages.GET("/unread",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "message", "read"),
			handler.UnreadCount,
		)

		messages.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "message", "create"),
			handler.Send,
		)

		messages.PATCH("/:id/read",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "message", "update"),
			handler.MarkRead,
		)

		messages.POST("/read-all",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "message", "update"),
			handler.MarkAllRead,
		)
	}
}
