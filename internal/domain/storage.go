package domain

import (
	"context"
	"io"
	"time"
)

// PosterStorage abstracts the object store holding poster images. Keys are
// opaque object names inside a single bucket; SignedURL mints a time-limited
// read URL for one of them.
type PosterStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, key string) error

	// PublicURL returns a best-effort unsigned display URL for a key, used
	// as a fallback when signing fails. The result may 404 for private
	// buckets; callers log the downgrade instead of hiding it.
	PublicURL(key string) string
}
