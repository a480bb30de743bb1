package mocks

import (
	"context"
	"io"
	"time"

	"github.com/filmbox/movie-catalog/internal/domain"
)

// MockPosterStorage implements domain.PosterStorage with overridable
// functions. The zero value signs every key deterministically, which is
// enough for most handler tests.
type MockPosterStorage struct {
	UploadFunc    func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	SignedURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
	RemoveFunc    func(ctx context.Context, key string) error
	PublicURLFunc func(key string) string
}

var _ domain.PosterStorage = (*MockPosterStorage)(nil)

func (m *MockPosterStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, r, size, contentType)
	}
	return nil
}

func (m *MockPosterStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.SignedURLFunc != nil {
		return m.SignedURLFunc(ctx, key, expiry)
	}
	return "https://storage.test/signed/" + key, nil
}

func (m *MockPosterStorage) Remove(ctx context.Context, key string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, key)
	}
	return nil
}

func (m *MockPosterStorage) PublicURL(key string) string {
	if m.PublicURLFunc != nil {
		return m.PublicURLFunc(key)
	}
	return "https://storage.test/public/" + key
}
