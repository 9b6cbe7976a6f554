package middleware

import (
	"net/http"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface; any package with a matching Enforce
// method satisfies it.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize checks the principal against the casbin policy. Employees
// are enforced by their role subject so branch-management roles gain extra
// permissions; admins and companies by their principal type.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("user_type")
		if userType == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		subject := userType
		if userType == string(domain.PrincipalEmployee) {
			subject = c.GetString("role")
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Subject:  subject,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
