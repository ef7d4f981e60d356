package handlers

import (
	"errors"
	"net/http"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/devfolio/portfolio-api/pkg/slug"
	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	service services.BlogServiceInterface
}

func NewBlogHandler(service services.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{service: service}
}

// ListPublished serves the public blog listing
func (h *BlogHandler) ListPublished(c *gin.Context) {
	blogs, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, blogs)
}

// ShowBySlug serves a published post and counts the view
func (h *BlogHandler) ShowBySlug(c *gin.Context) {
	postSlug := c.Param("slug")
	if !slug.IsValid(postSlug) {
		respondError(c, http.StatusNotFound, "Blog not found", errors.New("malformed blog slug"))
		return
	}

	blog, err := h.service.ViewBySlug(c.Request.Context(), postSlug)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, blog)
}

func (h *BlogHandler) ListAll(c *gin.Context) {
	blogs, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, blogs)
}

func (h *BlogHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "Blog")
	if !ok {
		return
	}

	blog, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, blog)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req models.CreateBlogRequest
	if !bindJSON(c, &req) {
		return
	}

	blog, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Blog created successfully", blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Blog")
	if !ok {
		return
	}

	var req models.UpdateBlogRequest
	if !bindJSON(c, &req) {
		return
	}

	blog, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Blog updated successfully", blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Blog")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Blog deleted successfully", nil)
}
