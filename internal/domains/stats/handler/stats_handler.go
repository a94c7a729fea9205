package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/stats"
	"portfolio-backend/internal/shared/response"
)

type StatsHandler struct {
	service stats.Service
}

func NewStatsHandler(service stats.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles GET /stats
func (h *StatsHandler) Get(c *gin.Context) {
	result, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Stats retrieved successfully", result)
}
