package photos

import (
	"context"
	"fmt"
)

// Backend names a photo storage implementation.
type Backend string

const (
	BackendS3     Backend = "s3"
	BackendGCS    Backend = "gcs"
	BackendMemory Backend = "memory"
)

// Config selects and configures a photo backend.
type Config struct {
	Backend        Backend
	Bucket         string
	Region         string
	Endpoint       string // optional, for MinIO or LocalStack
	AccessKey      string
	SecretKey      string
	PublicBaseURL  string // optional prefix photo URLs are built from
	MaxUploadBytes int64
}

// New builds the Store selected by cfg.Backend. An empty backend means
// memory.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(cfg.PublicBaseURL, cfg.MaxUploadBytes)
	case BackendS3:
		return NewS3Store(ctx, cfg)
	case BackendGCS:
		return newGCSStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported photo storage backend: %s", cfg.Backend)
	}
}
