package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/internal/shared/response"
)

type SkillHandler struct {
	service skill.Service
}

func NewSkillHandler(service skill.Service) *SkillHandler {
	return &SkillHandler{service: service}
}

// List handles GET /skills?category=&featured=
// Unrecognized filter values are ignored rather than rejected.
func (h *SkillHandler) List(c *gin.Context) {
	f := skill.Filter{
		Category: c.Query("category"),
		Featured: parseBoolFilter(c.Query("featured")),
	}

	results, err := h.service.ListSkills(c.Request.Context(), f)
	if err != nil {
		response.AppError(c, err)
		return
	}
	if results == nil {
		results = []*skill.Response{}
	}

	response.Success(c, http.StatusOK, "Skills retrieved successfully", results)
}

// Create handles POST /admin/skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req skill.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateSkill(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created successfully", result)
}

// Update handles PUT /admin/skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	var req skill.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateSkill(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated successfully", result)
}

// Delete handles DELETE /admin/skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	if err := h.service.DeleteSkill(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill deleted successfully", nil)
}

// parseBoolFilter maps "true"/"false" (and friends) to a filter value;
// anything else means "no filter".
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
