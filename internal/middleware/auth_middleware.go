package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/Akhand-Replit/Akhand-office-v2/internal/auth/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (or access_token cookie) and
// loads principal claims into the gin context: user_type, user_id,
// company_id, branch_id, role.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userType, ok := claims["user_type"].(string)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Principal type not found in token", nil)
			c.Abort()
			return
		}
		if _, valid := domain.ParsePrincipalType(userType); !valid {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Unknown principal type", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		// Admin tokens carry no company scope; everyone else must.
		companyID, _ := claims["company_id"].(string)
		if userType != string(domain.PrincipalAdmin) && companyID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Company ID not found in token", nil)
			c.Abort()
			return
		}

		branchID, _ := claims["branch_id"].(string)
		role, _ := claims["role"].(string)

		c.Set("user_type", userType)
		c.Set("user_id", userID)
		c.Set("company_id", companyID)
		c.Set("branch_id", branchID)
		c.Set("role", role)

		c.Next()
	}
}

// RequirePrincipal restricts a route group to the given principal types.
func RequirePrincipal(allowed ...domain.PrincipalType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("user_type")

		for _, t := range allowed {
			if userType == string(t) {
				c.Next()
				return
			}
		}

		response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
		c.Abort()
	}
}
