package photos

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// MemoryStore keeps photos in process memory. It backs local development and
// tests.
type MemoryStore struct {
	mu       sync.RWMutex
	objects  map[string]Object
	base     *url.URL
	maxBytes int64
	now      func() time.Time
}

// Object is a stored photo.
type Object struct {
	Data        []byte
	ContentType string
}

// NewMemoryStore returns an empty store serving URLs under baseURL. An empty
// baseURL defaults to http://localhost/photos.
func NewMemoryStore(baseURL string, maxBytes int64) (*MemoryStore, error) {
	if baseURL == "" {
		baseURL = "http://localhost/photos"
	}
	base, err := mustParseBase(baseURL)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{
		objects:  make(map[string]Object),
		base:     base,
		maxBytes: maxBytes,
		now:      time.Now,
	}, nil
}

func (m *MemoryStore) Upload(ctx context.Context, data []byte, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	up, err := prepare(data, originalName, m.maxBytes, now)
	if err != nil {
		return "", err
	}
	// Keys carry a millisecond stamp; bump it when two uploads of the same
	// name land in the same millisecond.
	for {
		if _, taken := m.objects[up.key]; !taken {
			break
		}
		now = now.Add(time.Millisecond)
		up.key = KeyFor(originalName, now)
	}
	m.objects[up.key] = Object{Data: append([]byte(nil), data...), ContentType: up.contentType}
	return publicURL(m.base, up.key), nil
}

func (m *MemoryStore) Delete(ctx context.Context, photoURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := keyFromURL(m.base, photoURL)
	if err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

// Get returns the object stored at photoURL.
func (m *MemoryStore) Get(photoURL string) (Object, bool) {
	key, err := keyFromURL(m.base, photoURL)
	if err != nil {
		return Object{}, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// Lookup returns the object stored under key.
func (m *MemoryStore) Lookup(key string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// Len reports how many objects are stored.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
