package auth

import (
	"context"
	"crypto/subtle"
	"os"
	"time"

	autherrors "github.com/Akhand-Replit/Akhand-office-v2/internal/auth/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	// AdminUserID is the fixed principal ID of the env-configured admin,
	// which has no database row.
	AdminUserID = "admin"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, actor domain.Actor) (AuthResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

// tokenClaims is everything a pair of tokens encodes about a principal.
type tokenClaims struct {
	UserType  string
	UserID    string
	CompanyID string
	BranchID  string
	Role      string
}

// Login resolves the username against the three principal kinds in order:
// the env-configured admin, then companies, then employees.
func (s *service) Login(ctx context.Context, username, password string) (string, string, AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if adminUser := os.Getenv("ADMIN_USERNAME"); adminUser != "" && username == adminUser {
		adminPass := os.Getenv("ADMIN_PASSWORD")
		if subtle.ConstantTimeCompare([]byte(password), []byte(adminPass)) != 1 {
			return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}

		claims := tokenClaims{UserType: string(domain.PrincipalAdmin), UserID: AdminUserID}
		access, refresh, err := s.issueTokens(claims)
		if err != nil {
			return "", "", AuthResponse{}, err
		}

		s.logger.Info("login success", zap.String("request_id", rid), zap.String("user_type", "admin"))
		return access, refresh, AuthResponse{
			UserType: string(domain.PrincipalAdmin),
			ID:       AdminUserID,
			Username: username,
			Name:     "Administrator",
		}, nil
	}

	if company, err := s.repo.GetCompanyByUsername(ctx, username); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(company.Password), []byte(password)) != nil {
			return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		if !company.IsActive {
			return "", "", AuthResponse{}, autherrors.ErrAccountInactive
		}

		claims := tokenClaims{
			UserType:  string(domain.PrincipalCompany),
			UserID:    company.ID.String(),
			CompanyID: company.ID.String(),
		}
		access, refresh, err := s.issueTokens(claims)
		if err != nil {
			return "", "", AuthResponse{}, err
		}

		s.logger.Info("login success",
			zap.String("request_id", rid),
			zap.String("user_type", "company"),
			zap.String("company_id", company.ID.String()),
		)
		return access, refresh, AuthResponse{
			UserType:  string(domain.PrincipalCompany),
			ID:        company.ID.String(),
			CompanyID: company.ID.String(),
			Username:  company.Username,
			Name:      company.CompanyName,
		}, nil
	}

	empl, err := s.repo.GetEmployeeByUsername(ctx, username)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(password)) != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !empl.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	claims := tokenClaims{
		UserType:  string(domain.PrincipalEmployee),
		UserID:    empl.ID.String(),
		CompanyID: empl.CompanyID.String(),
		BranchID:  empl.BranchID.String(),
		Role:      string(empl.Role),
	}
	access, refresh, err := s.issueTokens(claims)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_type", "employee"),
		zap.String("employee_id", empl.ID.String()),
	)
	return access, refresh, AuthResponse{
		UserType:  string(domain.PrincipalEmployee),
		ID:        empl.ID.String(),
		CompanyID: empl.CompanyID.String(),
		BranchID:  empl.BranchID.String(),
		Role:      string(empl.Role),
		Username:  empl.Username,
		Name:      empl.FullName,
	}, nil
}

// RefreshToken re-reads the principal so revoked or deactivated accounts
// cannot refresh their way back in.
func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	userType, _ := mapClaims["user_type"].(string)
	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	switch userType {
	case string(domain.PrincipalAdmin):
		claims := tokenClaims{UserType: userType, UserID: AdminUserID}
		access, refresh, err := s.issueTokens(claims)
		if err != nil {
			return "", "", AuthResponse{}, err
		}
		return access, refresh, AuthResponse{
			UserType: userType,
			ID:       AdminUserID,
			Name:     "Administrator",
		}, nil

	case string(domain.PrincipalCompany):
		company, err := s.repo.GetCompanyByID(ctx, userID)
		if err != nil {
			return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		if !company.IsActive {
			return "", "", AuthResponse{}, autherrors.ErrAccountInactive
		}

		claims := tokenClaims{
			UserType:  userType,
			UserID:    company.ID.String(),
			CompanyID: company.ID.String(),
		}
		access, refresh, err := s.issueTokens(claims)
		if err != nil {
			return "", "", AuthResponse{}, err
		}
		return access, refresh, AuthResponse{
			UserType:  userType,
			ID:        company.ID.String(),
			CompanyID: company.ID.String(),
			Username:  company.Username,
			Name:      company.CompanyName,
		}, nil

	case string(domain.PrincipalEmployee):
		empl, err := s.repo.GetEmployeeByID(ctx, userID)
		if err != nil {
			return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		if !empl.IsActive {
			return "", "", AuthResponse{}, autherrors.ErrAccountInactive
		}

		claims := tokenClaims{
			UserType:  userType,
			UserID:    empl.ID.String(),
			CompanyID: empl.CompanyID.String(),
			BranchID:  empl.BranchID.String(),
			Role:      string(empl.Role),
		}
		access, refresh, err := s.issueTokens(claims)
		if err != nil {
			return "", "", AuthResponse{}, err
		}
		return access, refresh, AuthResponse{
			UserType:  userType,
			ID:        empl.ID.String(),
			CompanyID: empl.CompanyID.String(),
			BranchID:  empl.BranchID.String(),
			Role:      string(empl.Role),
			Username:  empl.Username,
			Name:      empl.FullName,
		}, nil

	default:
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
}

func (s *service) GetMe(ctx context.Context, actor domain.Actor) (AuthResponse, error) {
	switch actor.Type {
	case domain.PrincipalAdmin:
		return AuthResponse{
			UserType: string(domain.PrincipalAdmin),
			ID:       AdminUserID,
			Name:     "Administrator",
		}, nil

	case domain.PrincipalCompany:
		company, err := s.repo.GetCompanyByID(ctx, actor.UserID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{
			UserType:  string(domain.PrincipalCompany),
			ID:        company.ID.String(),
			CompanyID: company.ID.String(),
			Username:  company.Username,
			Name:      company.CompanyName,
		}, nil

	case domain.PrincipalEmployee:
		empl, err := s.repo.GetEmployeeByID(ctx, actor.UserID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{
			UserType:  string(domain.PrincipalEmployee),
			ID:        empl.ID.String(),
			CompanyID: empl.CompanyID.String(),
			BranchID:  empl.BranchID.String(),
			Role:      string(empl.Role),
			Username:  empl.Username,
			Name:      empl.FullName,
		}, nil

	default:
		return AuthResponse{}, autherrors.ErrInvalidToken
	}
}

func (s *service) issueTokens(claims tokenClaims) (string, string, error) {
	access, err := s.generateToken(claims, accessTokenTTL)
	if err != nil {
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(claims, refreshTokenTTL)
	if err != nil {
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	return access, refresh, nil
}

func (s *service) generateToken(claims tokenClaims, expiry time.Duration) (string, error) {
	mapClaims := jwt.MapClaims{
		"user_type":  claims.UserType,
		"user_id":    claims.UserID,
		"company_id": claims.CompanyID,
		"branch_id":  claims.BranchID,
		"role":       claims.Role,
		"exp":        time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
