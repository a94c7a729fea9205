package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/shared/response"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent successfully", result)
}

// List handles GET /admin/messages
func (h *ContactHandler) List(c *gin.Context) {
	results, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}
	if results == nil {
		results = []*contact.Response{}
	}

	response.Success(c, http.StatusOK, "Messages retrieved successfully", results)
}

// MarkRead handles PATCH /admin/messages/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	result, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message marked as read", result)
}

// MarkReplied handles PATCH /admin/messages/:id/replied
func (h *ContactHandler) MarkReplied(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	result, err := h.service.MarkReplied(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message marked as replied", result)
}

// Delete handles DELETE /admin/messages/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message deleted successfully", nil)
}
