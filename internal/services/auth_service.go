package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/portfolio-api/config"
	"github.com/devfolio/portfolio-api/internal/cache"
	"github.com/devfolio/portfolio-api/internal/models"
	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/devfolio/portfolio-api/pkg/jwt"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin authentication
type AuthService struct {
	admin        config.AdminConfig
	tokenManager *jwt.TokenManager
	revoked      cache.RevocationStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(admin config.AdminConfig, tokenManager *jwt.TokenManager, revoked cache.RevocationStore) *AuthService {
	return &AuthService{
		admin:        admin,
		tokenManager: tokenManager,
		revoked:      revoked,
	}
}

// Login checks the admin credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// bcrypt runs even for an unknown email so both failures take the same time
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	emailMatches := jwt.TimingSafeCompare(
		strings.ToLower(strings.TrimSpace(req.Email)),
		strings.ToLower(strings.TrimSpace(s.admin.Email)),
	)

	if !emailMatches || passwordErr != nil {
		metrics.AdminLogins.WithLabelValues("failed").Inc()
		logger.Warn("Admin login failed", zap.String("email", req.Email))
		return nil, apperrors.UnauthorizedError("Invalid credentials")
	}

	token, claims, err := s.tokenManager.GenerateToken(s.admin.Email, s.admin.Name)
	if err != nil {
		metrics.AdminLogins.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	logger.Info("Admin logged in", zap.String("token_id", claims.TokenID()))

	return &models.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenManager.GetExpirationTime().Seconds()),
		User: models.AdminUser{
			Email: s.admin.Email,
			Name:  s.admin.Name,
		},
	}, nil
}

// Authenticate resolves a bearer token into an admin session.
// Expired, malformed and revoked tokens are all reported as unauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.AdminSession, error) {
	claims, err := s.tokenManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.UnauthorizedError(err.Error())
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID())
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.UnauthorizedError("token revoked")
	}

	session := &models.AdminSession{
		Email:   claims.Email,
		Name:    claims.Name,
		TokenID: claims.TokenID(),
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return session, nil
}

// Logout revokes the session token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, session *models.AdminSession) error {
	if session == nil || session.TokenID == "" {
		return apperrors.UnauthorizedError("no session")
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	if err := s.revoked.Revoke(ctx, session.TokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	logger.Info("Admin logged out", zap.String("token_id", session.TokenID))
	return nil
}
