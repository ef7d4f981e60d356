package handlers

import (
	"net/http"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	service services.SkillServiceInterface
}

func NewSkillHandler(service services.SkillServiceInterface) *SkillHandler {
	return &SkillHandler{service: service}
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, skills)
}

func (h *SkillHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "Skill")
	if !ok {
		return
	}

	skill, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, skill)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req models.CreateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Skill created successfully", skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Skill")
	if !ok {
		return
	}

	var req models.UpdateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Skill updated successfully", skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Skill")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Skill deleted successfully", nil)
}
