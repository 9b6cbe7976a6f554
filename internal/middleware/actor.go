package middleware

import (
	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"

	"github.com/gin-gonic/gin"
)

// ActorFromContext rebuilds the acting principal from the claims the auth
// middleware stored on the request.
func ActorFromContext(c *gin.Context) domain.Actor {
	pt, _ := domain.ParsePrincipalType(c.GetString("user_type"))
	role, _ := domain.ParseRole(c.GetString("role"))
	return domain.Actor{
		Type:     pt,
		UserID:   c.GetString("user_id"),
		BranchID: c.GetString("branch_id"),
		Role:     role,
	}
}
