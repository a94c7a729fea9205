package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/response"
)

type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /projects?category=&status=&featured=
// Unrecognized filter values fall through to the repository, which
// simply matches nothing for unknown enum members.
func (h *ProjectHandler) List(c *gin.Context) {
	f := project.Filter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Featured: parseBoolFilter(c.Query("featured")),
	}

	results, err := h.service.ListProjects(c.Request.Context(), f)
	if err != nil {
		response.AppError(c, err)
		return
	}
	if results == nil {
		results = []*project.Response{}
	}

	response.Success(c, http.StatusOK, "Projects retrieved successfully", results)
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	result, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Project retrieved successfully", result)
}

// GetBySlug handles GET /projects/slug/:slug
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetProjectBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Project retrieved successfully", result)
}

// Create handles POST /admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req project.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateProject(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created successfully", result)
}

// Update handles PUT /admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	var req project.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated successfully", result)
}

// Delete handles DELETE /admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted successfully", nil)
}

func parseBoolFilter(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
