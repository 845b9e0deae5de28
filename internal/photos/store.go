// Package photos keeps achievement photos in object storage and hands out
// the public URLs stored on achievement rows.
package photos

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"MILESTONES_BACK-END/internal/common"
)

// DefaultMaxUploadBytes is the upload limit applied when none is configured.
const DefaultMaxUploadBytes = 5 << 20

// Store uploads photo bytes and deletes them again by URL.
type Store interface {
	// Upload stores data under a key derived from originalName and returns
	// the object's public URL.
	Upload(ctx context.Context, data []byte, originalName string) (string, error)
	// Delete removes the object a URL previously returned by Upload points at.
	// Deleting an object that is already gone is not an error.
	Delete(ctx context.Context, photoURL string) error
}

// KeyFor strips the extension from originalName, appends a millisecond
// timestamp and puts the extension back: "first steps.jpg" becomes
// "first steps-1710061200000.jpg".
func KeyFor(originalName string, now time.Time) string {
	name := filepath.Base(strings.ReplaceAll(originalName, `\`, "/"))
	if name == "." || name == "/" {
		name = ""
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base = "photo"
	}
	return base + "-" + strconv.FormatInt(now.UnixMilli(), 10) + strings.ToLower(ext)
}

// DetectContentType sniffs the bytes, falling back to the file extension when the
// content is not recognised.
func DetectContentType(data []byte, originalName string) string {
	mt := mimetype.Detect(data)
	if !mt.Is("application/octet-stream") {
		return mt.String()
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(originalName))); byExt != "" {
		return byExt
	}
	return mt.String()
}

// upload is the validated form of an upload request shared by every backend.
type upload struct {
	key         string
	contentType string
}

func prepare(data []byte, originalName string, maxBytes int64, now time.Time) (upload, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if int64(len(data)) > maxBytes {
		return upload{}, common.ErrPhotoTooLarge
	}
	if len(data) == 0 {
		return upload{}, common.NewValidationError("photo file is empty")
	}

	ct := DetectContentType(data, originalName)
	if !strings.HasPrefix(ct, "image/") {
		return upload{}, common.NewValidationError(fmt.Sprintf("photo must be an image, got %s", ct))
	}
	return upload{key: KeyFor(originalName, now), contentType: ct}, nil
}

// publicURL joins base and key.
func publicURL(base *url.URL, key string) string {
	u := *base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + key
	u.RawPath = ""
	return u.String()
}

// keyFromURL extracts the object key from a URL built by publicURL.
func keyFromURL(base *url.URL, photoURL string) (string, error) {
	u, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("parse photo url: %w", err)
	}
	prefix := strings.TrimSuffix(base.Path, "/") + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", fmt.Errorf("photo url %q is outside %s", photoURL, base.String())
	}
	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", fmt.Errorf("photo url %q has no object key", photoURL)
	}
	return key, nil
}

func mustParseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse public base url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("public base url %q must be absolute", raw)
	}
	return u, nil
}
