// Package storage implements domain.PosterStorage on top of a MinIO/S3
// bucket. Poster rows store bare object keys; display URLs are minted here as
// presigned GET URLs with a bounded lifetime.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/filmbox/movie-catalog/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

type MinioPosterStorage struct {
	client *minio.Client
	bucket string
	public string
}

var _ domain.PosterStorage = (*MinioPosterStorage)(nil)

// NewMinioPosterStorage builds the client and fails fast when the target
// bucket is unreachable or missing.
func NewMinioPosterStorage(ctx context.Context, cfg Config) (*MinioPosterStorage, error) {
	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	return &MinioPosterStorage{
		client: client,
		bucket: cfg.Bucket,
		public: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *MinioPosterStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey(key), r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return fmt.Errorf("upload object %q: %w", key, err)
	}

	return nil
}

func (s *MinioPosterStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if key == "" {
		return "", domain.ErrNoPosterKey
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey(key), expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}

	return u.String(), nil
}

// Remove deletes the stored object. A missing object is not an error: delete
// is best-effort and must not block removing the row it belonged to.
func (s *MinioPosterStorage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectKey(key), minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return nil
		}

		return fmt.Errorf("remove object %q: %w", key, err)
	}

	return nil
}

func (s *MinioPosterStorage) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.public == "" {
		return key
	}

	return s.public + "/" + objectKey(key)
}

// objectKey normalizes a stored value to a bare object name. Legacy rows may
// hold a full path or URL; only the last segment identifies the object.
func objectKey(key string) string {
	return path.Base(strings.TrimRight(key, "/"))
}
