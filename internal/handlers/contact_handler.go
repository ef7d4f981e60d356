package handlers

import (
	"net/http"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit stores a message from the public contact form
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	req.RemoteIP = c.ClientIP()

	if _, err := h.service.Submit(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Message sent successfully! We will get back to you soon.", nil)
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, contacts)
}

func (h *ContactHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "Contact")
	if !ok {
		return
	}

	contact, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, contact)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "Contact")
	if !ok {
		return
	}

	var req models.MarkContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.MarkRead(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Message updated successfully", contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Contact")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Message deleted successfully", nil)
}
