package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	objects map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Resolve(key string) string {
	if key == "" {
		return ""
	}
	return "https://media.test/" + key
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.objects[key] = data
	return f.Resolve(key), nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

func setupRouter(h *MediaHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/media", h.Upload)
	r.DELETE("/admin/media/:key", h.Delete)
	return r
}

func multipartBody(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadStoresFileAndReturnsKey(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(NewMediaHandler(store))

	body, contentType := multipartBody(t, "avatar.png", "image/png", []byte("fake png bytes"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Key string `json:"key"`
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Key)
	assert.Contains(t, resp.Data.Key, ".png")
	assert.Equal(t, "https://media.test/"+resp.Data.Key, resp.Data.URL)
	assert.Contains(t, store.objects, resp.Data.Key)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(NewMediaHandler(store))

	body, contentType := multipartBody(t, "payload.exe", "application/octet-stream", []byte{0xDE, 0xAD})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.objects)
}

func TestUploadRequiresFilePart(t *testing.T) {
	router := setupRouter(NewMediaHandler(newFakeStore()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/media", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadWithoutStoreReturns503(t *testing.T) {
	router := setupRouter(NewMediaHandler(nil))

	body, contentType := multipartBody(t, "avatar.png", "image/png", []byte("x"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDeleteRemovesObject(t *testing.T) {
	store := newFakeStore()
	store.objects["old-avatar.png"] = []byte("x")
	router := setupRouter(NewMediaHandler(store))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/media/old-avatar.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"old-avatar.png"}, store.deleted)
}
