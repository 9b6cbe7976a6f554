package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/auth"
	autherrors "github.com/Akhand-Replit/Akhand-office-v2/internal/auth/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn        func(ctx context.Context, username, password string) (string, string, auth.AuthResponse, error)
	RefreshTokenFn func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error)
	GetMeFn        func(ctx context.Context, actor domain.Actor) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, string, auth.AuthResponse, error) {
	return f.LoginFn(ctx, username, password)
}
func (f *fakeAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
	return f.RefreshTokenFn(ctx, refreshToken)
}
func (f *fakeAuthService) GetMe(ctx context.Context, actor domain.Actor) (auth.AuthResponse, error) {
	return f.GetMeFn(ctx, actor)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - web client receives cookies", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "acme1", username)
				return "access-token", "refresh-token", auth.AuthResponse{
					UserType: "company",
					ID:       uuid.New().String(),
					Username: username,
					Name:     "Acme Ltd",
				}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"acme1","password":"companypass"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "web")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access-token")

		cookies := w.Result().Cookies()
		names := make([]string, 0, len(cookies))
		for _, ck := range cookies {
			names = append(names, ck.Name)
		}
		assert.Contains(t, names, "access_token")
		assert.Contains(t, names, "refresh_token")
	})

	t.Run("fail - bad credentials map to 401", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"acme1","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("fail - deactivated account maps to 403", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, autherrors.ErrAccountInactive
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"ge.one","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - api client sends token in body", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshTokenFn: func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "old-refresh", refreshToken)
				return "new-access", "new-refresh", auth.AuthResponse{UserType: "company"}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh",
			strings.NewReader(`{"refresh_token":"old-refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "api")
		c.Request = req

		h.RefreshToken(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new-access")
	})

	t.Run("fail - web client without cookie", func(t *testing.T) {
		svc := &fakeAuthService{}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		req.Header.Set("X-Client-Type", "web")
		c.Request = req

		h.RefreshToken(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - actor from claims", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeAuthService{
			GetMeFn: func(ctx context.Context, actor domain.Actor) (auth.AuthResponse, error) {
				assert.Equal(t, domain.PrincipalEmployee, actor.Type)
				assert.Equal(t, userID, actor.UserID)
				return auth.AuthResponse{UserType: "employee", ID: userID, Name: "Self Person"}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_type", "employee")
		c.Set("user_id", userID)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Self Person")
	})
}
