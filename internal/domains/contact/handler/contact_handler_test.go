package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact"
)

type stubService struct {
	submitResp *contact.SubmitResponse
	submitErr  error
}

func (s *stubService) Submit(ctx context.Context, req *contact.SubmitRequest) (*contact.SubmitResponse, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.submitResp, nil
}

func (s *stubService) ListMessages(ctx context.Context) ([]*contact.Response, error) {
	return nil, nil
}

func (s *stubService) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Response, error) {
	return nil, contact.ErrNotFound
}

func (s *stubService) MarkReplied(ctx context.Context, id uuid.UUID) (*contact.Response, error) {
	return nil, contact.ErrNotFound
}

func (s *stubService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return contact.ErrNotFound
}

func setupRouter(svc contact.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewContactHandler(svc)
	r.POST("/contact", h.Submit)
	r.PATCH("/admin/messages/:id/read", h.MarkRead)
	return r
}

func TestSubmitReturns201(t *testing.T) {
	svc := &stubService{submitResp: &contact.SubmitResponse{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}}
	router := setupRouter(svc)

	body := `{"name":"Ada","email":"ada@example.com","message":"Hi"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data)
}

func TestSubmitValidationErrorNamesFields(t *testing.T) {
	svc := &stubService{submitErr: contact.ErrValidation("name", "email", "message")}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code   string   `json:"code"`
			Fields []string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "MESSAGE_VALIDATION", resp.Error.Code)
	assert.ElementsMatch(t, []string{"name", "email", "message"}, resp.Error.Fields)
}

func TestSubmitMalformedJSON(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkReadRejectsBadID(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/messages/not-a-uuid/read", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkReadUnknownIDReturns404(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/messages/"+uuid.NewString()+"/read", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
