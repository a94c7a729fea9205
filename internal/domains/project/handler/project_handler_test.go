package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project"
)

type stubService struct {
	lastFilter project.Filter
	results    []*project.Response
}

func (s *stubService) ListProjects(ctx context.Context, f project.Filter) ([]*project.Response, error) {
	s.lastFilter = f
	return s.results, nil
}

func (s *stubService) GetProject(ctx context.Context, id uuid.UUID) (*project.Response, error) {
	return nil, project.ErrNotFound
}

func (s *stubService) GetProjectBySlug(ctx context.Context, slug string) (*project.Response, error) {
	return nil, project.ErrNotFound
}

func (s *stubService) CreateProject(ctx context.Context, req *project.UpsertRequest) (*project.Response, error) {
	return nil, project.ErrNotFound
}

func (s *stubService) UpdateProject(ctx context.Context, id uuid.UUID, req *project.UpsertRequest) (*project.Response, error) {
	return nil, project.ErrNotFound
}

func (s *stubService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return project.ErrNotFound
}

func setupRouter(svc project.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProjectHandler(svc)
	r.GET("/projects", h.List)
	return r
}

func listEnvelope(t *testing.T, w *httptest.ResponseRecorder) (bool, []json.RawMessage) {
	t.Helper()
	var resp struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Success, resp.Data
}

func TestListUnknownCategoryReturnsEmpty200(t *testing.T) {
	svc := &stubService{}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?category=doesnotexist", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	success, data := listEnvelope(t, w)
	assert.True(t, success)
	assert.Empty(t, data)
	assert.Equal(t, "doesnotexist", svc.lastFilter.Category)
}

func TestListGarbageFeaturedMeansNoFilter(t *testing.T) {
	svc := &stubService{}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?featured=banana", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.lastFilter.Featured, "an unparseable featured value must be ignored")
}

func TestListFeaturedParsed(t *testing.T) {
	svc := &stubService{}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?featured=true", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, svc.lastFilter.Featured) {
		assert.True(t, *svc.lastFilter.Featured)
	}
}

func TestListPassesStatusThrough(t *testing.T) {
	svc := &stubService{}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?status=archived", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, project.StatusArchived, svc.lastFilter.Status)
}
