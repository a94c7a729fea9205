package media

// UploadResponse acknowledges a stored object. The key is what profile
// and project records reference; the URL is the resolved public
// location.
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
