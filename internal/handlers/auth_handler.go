package handlers

import (
	"errors"
	"net/http"

	"github.com/devfolio/portfolio-api/internal/middleware"
	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service services.AuthServiceInterface
}

func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials", err)
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session, err := middleware.GetAdminSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthenticated.", err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), session); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the admin behind the current token
func (h *AuthHandler) Me(c *gin.Context) {
	session, err := middleware.GetAdminSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthenticated.", err)
		return
	}

	respondData(c, http.StatusOK, models.AdminUser{Email: session.Email, Name: session.Name})
}
