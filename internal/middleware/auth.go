package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/devfolio/portfolio-api/internal/models"
	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminSessionContextKey stores the authenticated admin session in request context.
const AdminSessionContextKey = "admin_session"

var (
	ErrAdminSessionNotFound = errors.New("admin session not found in context")
	ErrInvalidAdminSession  = errors.New("invalid admin session type")
)

// SessionAuthenticator resolves a bearer token into an admin session
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.AdminSession, error)
}

// AdminAuthMiddleware requires "Authorization: Bearer <token>" and stores the
// resolved session in context.
func AdminAuthMiddleware(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Warn("Missing bearer token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			unauthenticated(c, errors.New("missing bearer token"))
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				_ = c.Error(err) //nolint:errcheck
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal server error",
				})
				return
			}

			logger.Warn("Invalid bearer token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			unauthenticated(c, fmt.Errorf("invalid bearer token: %w", err))
			return
		}

		c.Set(AdminSessionContextKey, session)
		c.Next()
	}
}

// GetAdminSession returns the session stored by AdminAuthMiddleware
func GetAdminSession(c *gin.Context) (*models.AdminSession, error) {
	val, exists := c.Get(AdminSessionContextKey)
	if !exists {
		return nil, ErrAdminSessionNotFound
	}

	session, ok := val.(*models.AdminSession)
	if !ok {
		return nil, ErrInvalidAdminSession
	}

	return session, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthenticated(c *gin.Context, err error) {
	_ = c.Error(err) //nolint:errcheck
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Unauthenticated.",
	})
}
