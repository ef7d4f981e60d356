package handlers

import (
	"net/http"

	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service services.StatsServiceInterface
}

func NewStatsHandler(service services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}
