package handlers

import (
	"net/http"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	service services.ProjectServiceInterface
}

func NewProjectHandler(service services.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListPublished serves the public project listing
func (h *ProjectHandler) ListPublished(c *gin.Context) {
	projects, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, projects)
}

// ShowPublished serves a single published project; drafts are reported as missing
func (h *ProjectHandler) ShowPublished(c *gin.Context) {
	id, ok := parseID(c, "Project")
	if !ok {
		return
	}

	project, err := h.service.GetPublished(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, project)
}

func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, projects)
}

func (h *ProjectHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "Project")
	if !ok {
		return
	}

	project, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Project created successfully", project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Project")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Project updated successfully", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Project")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Project deleted successfully", nil)
}
