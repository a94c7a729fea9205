package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/media"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/response"
)

// maxUploadSize bounds a single media upload.
const maxUploadSize = 10 << 20

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// MediaHandler serves the admin media endpoints. The store is nil when
// no object storage is configured; the endpoints then report 503 rather
// than disappearing from the route table.
type MediaHandler struct {
	store storage.MediaStore
}

func NewMediaHandler(store storage.MediaStore) *MediaHandler {
	return &MediaHandler{store: store}
}

// Upload handles POST /admin/media. It stores the multipart "file" part
// under a fresh key; records reference the key, not the URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.store == nil {
		response.ServiceUnavailable(c, "Media storage is not configured")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A multipart \"file\" part is required")
		return
	}
	if header.Size > maxUploadSize {
		response.BadRequest(c, "File exceeds the 10 MB limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		response.BadRequest(c, "Unsupported file type")
		return
	}

	f, err := header.Open()
	if err != nil {
		response.AppError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		response.AppError(c, err)
		return
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	url, err := h.store.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "File uploaded successfully", &media.UploadResponse{Key: key, URL: url})
}

// Delete handles DELETE /admin/media/:key
func (h *MediaHandler) Delete(c *gin.Context) {
	if h.store == nil {
		response.ServiceUnavailable(c, "Media storage is not configured")
		return
	}

	if err := h.store.Delete(c.Request.Context(), c.Param("key")); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "File deleted successfully", nil)
}
