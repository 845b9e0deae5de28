// Package client is a typed Go client for the milestones HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"MILESTONES_BACK-END/internal/dto"
)

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	Status  int
	Title   string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Title)
}

// NotFound reports whether the API answered 404.
func (e *APIError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
		var body dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			if body.Error != "" {
				apiErr.Title = body.Error
			}
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func achievementPath(id string) string {
	return "/api/achievements/" + url.PathEscape(id)
}

// Health calls GET /api/health. A 500 carries the DOWN body, so it is
// decoded rather than turned into an APIError.
func (c *Client) Health(ctx context.Context) (dto.HealthResponse, error) {
	var out dto.HealthResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/health", nil)
	if err != nil {
		return out, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode health response (status %d): %w", resp.StatusCode, err)
	}
	return out, nil
}

// ListAchievements calls GET /api/achievements.
func (c *Client) ListAchievements(ctx context.Context) ([]dto.AchievementResponse, error) {
	var out []dto.AchievementResponse
	err := c.do(ctx, http.MethodGet, "/api/achievements", nil, &out)
	return out, err
}

// GetAchievement calls GET /api/achievements/{id}.
func (c *Client) GetAchievement(ctx context.Context, id string) (dto.AchievementResponse, error) {
	var out dto.AchievementResponse
	err := c.do(ctx, http.MethodGet, achievementPath(id), nil, &out)
	return out, err
}

// CreateAchievement calls POST /api/achievements.
func (c *Client) CreateAchievement(ctx context.Context, req dto.AchievementRequest) (dto.AchievementResponse, error) {
	var out dto.AchievementResponse
	err := c.do(ctx, http.MethodPost, "/api/achievements", req, &out)
	return out, err
}

// UpdateAchievement calls PUT /api/achievements/{id}.
func (c *Client) UpdateAchievement(ctx context.Context, id string, req dto.AchievementRequest) (dto.AchievementResponse, error) {
	var out dto.AchievementResponse
	err := c.do(ctx, http.MethodPut, achievementPath(id), req, &out)
	return out, err
}

// DeleteAchievement calls DELETE /api/achievements/{id}.
func (c *Client) DeleteAchievement(ctx context.Context, id string) (dto.DeleteResponse, error) {
	var out dto.DeleteResponse
	err := c.do(ctx, http.MethodDelete, achievementPath(id), nil, &out)
	return out, err
}

// UploadPhoto calls POST /api/achievements/{id}/photo with data in the
// "photo" multipart field.
func (c *Client) UploadPhoto(ctx context.Context, id, filename string, data []byte) (dto.AchievementResponse, error) {
	var out dto.AchievementResponse

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("photo", filepath.Base(filename))
	if err != nil {
		return out, err
	}
	if _, err := fw.Write(data); err != nil {
		return out, err
	}
	if err := mw.Close(); err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+achievementPath(id)+"/photo", &body)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	err = c.send(req, &out)
	return out, err
}

// DeletePhoto calls DELETE /api/achievements/{id}/photo.
func (c *Client) DeletePhoto(ctx context.Context, id string) (dto.AchievementResponse, error) {
	var out dto.AchievementResponse
	err := c.do(ctx, http.MethodDelete, achievementPath(id)+"/photo", nil, &out)
	return out, err
}

// GetProfile calls GET /api/profile.
func (c *Client) GetProfile(ctx context.Context) (dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out)
	return out, err
}

// SaveProfile calls PUT /api/profile.
func (c *Client) SaveProfile(ctx context.Context, req dto.ProfileRequest) (dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	err := c.do(ctx, http.MethodPut, "/api/profile", req, &out)
	return out, err
}
