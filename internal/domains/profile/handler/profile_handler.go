package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/shared/response"
)

// ProfileHandler exposes the single-profile read plus the admin CRUD.
type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	result, err := h.service.GetProfile(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", result)
}

// Create handles POST /admin/profile
func (h *ProfileHandler) Create(c *gin.Context) {
	var req profile.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created successfully", result)
}

// Update handles PUT /admin/profile/:id
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	var req profile.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", result)
}

// Delete handles DELETE /admin/profile/:id
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted successfully", nil)
}
