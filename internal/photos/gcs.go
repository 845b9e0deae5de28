//go:build gcp

package photos

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"cloud.google.com/go/storage"
)

// GCSStore implements Store on Google Cloud Storage.
type GCSStore struct {
	client   *storage.Client
	bucket   string
	base     *url.URL
	maxBytes int64
	now      func() time.Time
}

// NewGCSStore creates a GCS backed photo store using application default
// credentials.
func NewGCSStore(ctx context.Context, cfg Config) (*GCSStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("photo bucket is required for GCS storage")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	rawBase := cfg.PublicBaseURL
	if rawBase == "" {
		rawBase = "https://storage.googleapis.com/" + cfg.Bucket
	}
	base, err := mustParseBase(rawBase)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &GCSStore{
		client:   client,
		bucket:   cfg.Bucket,
		base:     base,
		maxBytes: cfg.MaxUploadBytes,
		now:      time.Now,
	}, nil
}

// Upload writes the photo to the bucket and returns its public URL.
func (s *GCSStore) Upload(ctx context.Context, data []byte, originalName string) (string, error) {
	up, err := prepare(data, originalName, s.maxBytes, s.now())
	if err != nil {
		return "", err
	}

	w := s.client.Bucket(s.bucket).Object(up.key).NewWriter(ctx)
	w.ContentType = up.contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close failed: %w", err)
	}
	return publicURL(s.base, up.key), nil
}

// Delete removes the object behind photoURL.
func (s *GCSStore) Delete(ctx context.Context, photoURL string) error {
	key, err := keyFromURL(s.base, photoURL)
	if err != nil {
		return err
	}
	err = s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete failed for %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
