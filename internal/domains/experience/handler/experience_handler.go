package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/internal/shared/response"
)

type ExperienceHandler struct {
	service experience.Service
}

func NewExperienceHandler(service experience.Service) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

// List handles GET /experience?order=current_first
func (h *ExperienceHandler) List(c *gin.Context) {
	results, err := h.service.ListExperiences(c.Request.Context(), c.Query("order"))
	if err != nil {
		response.AppError(c, err)
		return
	}
	if results == nil {
		results = []*experience.Response{}
	}

	response.Success(c, http.StatusOK, "Experiences retrieved successfully", results)
}

// Create handles POST /admin/experience
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req experience.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateExperience(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience created successfully", result)
}

// Update handles PUT /admin/experience/:id
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid experience ID")
		return
	}

	var req experience.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateExperience(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated successfully", result)
}

// Delete handles DELETE /admin/experience/:id
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid experience ID")
		return
	}

	if err := h.service.DeleteExperience(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted successfully", nil)
}
