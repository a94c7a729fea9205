package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/education"
	"portfolio-backend/internal/shared/response"
)

type EducationHandler struct {
	service education.Service
}

func NewEducationHandler(service education.Service) *EducationHandler {
	return &EducationHandler{service: service}
}

// List handles GET /education
func (h *EducationHandler) List(c *gin.Context) {
	results, err := h.service.ListEducation(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}
	if results == nil {
		results = []*education.Response{}
	}

	response.Success(c, http.StatusOK, "Education retrieved successfully", results)
}

// Create handles POST /admin/education
func (h *EducationHandler) Create(c *gin.Context) {
	var req education.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateEducation(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Education created successfully", result)
}

// Update handles PUT /admin/education/:id
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid education ID")
		return
	}

	var req education.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateEducation(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated successfully", result)
}

// Delete handles DELETE /admin/education/:id
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid education ID")
		return
	}

	if err := h.service.DeleteEducation(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Education deleted successfully", nil)
}
