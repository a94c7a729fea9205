package storage

import (
	"context"
	"fmt"
	"strings"
)

// MediaResolver turns a stored object key (profile image, resume file,
// project image) into a URL the frontend can fetch. Media serving itself
// is an external collaborator; this interface is the only contact point.
type MediaResolver interface {
	Resolve(key string) string
}

// MediaStore extends MediaResolver with the write operations behind the
// admin media endpoints. Only the object-store backend implements it;
// with a plain base-URL resolver the endpoints report the store as
// unavailable.
type MediaStore interface {
	MediaResolver
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// BaseURLResolver joins keys onto a static base URL (CDN or reverse
// proxy). It is the fallback when no object store is configured.
type BaseURLResolver struct {
	BaseURL string
}

func (r *BaseURLResolver) Resolve(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(r.BaseURL, "/"), strings.TrimLeft(key, "/"))
}
