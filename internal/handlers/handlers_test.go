package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MILESTONES_BACK-END/internal/dto"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/models"
	"MILESTONES_BACK-END/internal/photos"
	"MILESTONES_BACK-END/internal/repositories/achievements"
	"MILESTONES_BACK-END/internal/repositories/profiles"
	"MILESTONES_BACK-END/internal/services"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type testServer struct {
	mux   *http.ServeMux
	store *photos.MemoryStore
}

func newTestServer(t *testing.T, repo achievements.Repository, maxUpload int64) testServer {
	t.Helper()
	log := logging.Nop()
	store, err := photos.NewMemoryStore("", maxUpload)
	require.NoError(t, err)

	ah := NewAchievementsHandler(services.NewAchievementService(repo, store, log), log, maxUpload)
	ph := NewProfileHandler(services.NewProfileService(profiles.NewMemoryRepository(), log), log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/achievements", ah.List)
	mux.HandleFunc("POST /api/achievements", ah.Create)
	mux.HandleFunc("GET /api/achievements/{id}", ah.Get)
	mux.HandleFunc("PUT /api/achievements/{id}", ah.Update)
	mux.HandleFunc("DELETE /api/achievements/{id}", ah.Delete)
	mux.HandleFunc("POST /api/achievements/{id}/photo", ah.UploadPhoto)
	mux.HandleFunc("DELETE /api/achievements/{id}/photo", ah.DeletePhoto)
	mux.HandleFunc("GET /api/profile", ph.Get)
	mux.HandleFunc("PUT /api/profile", ph.Put)
	return testServer{mux: mux, store: store}
}

func (s testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s testServer) upload(t *testing.T, id, field, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/achievements/"+id+"/photo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decodeAs[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const walkBody = `{"date":"2024-03-10","title":"First steps","description":"","ageAtEvent":{"years":1,"months":1,"days":26},"tags":["walking"," ","first"]}`

func TestCreateAndList(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)

	rec := s.do(t, http.MethodPost, "/api/achievements", walkBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeAs[map[string]any](t, rec)
	assert.Equal(t, "2024-03-10", created["date"])
	assert.Nil(t, created["description"])
	assert.Nil(t, created["photo"])
	assert.Equal(t, []any{"walking", "first"}, created["tags"])
	assert.Equal(t, map[string]any{"years": 1.0, "months": 1.0, "days": 26.0}, created["ageAtEvent"])

	rec = s.do(t, http.MethodGet, "/api/achievements", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeAs[[]dto.AchievementResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created["id"], list[0].ID)
}

func TestListOrdering(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)
	for _, d := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		body := `{"date":"` + d + `","title":"t","ageAtEvent":{"years":0,"months":1,"days":0}}`
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/achievements", body).Code)
	}

	list := decodeAs[[]dto.AchievementResponse](t, s.do(t, http.MethodGet, "/api/achievements", ""))
	var dates []string
	for _, a := range list {
		dates = append(dates, a.Date)
	}
	assert.Equal(t, []string{"2024-03-01", "2024-02-01", "2024-01-01"}, dates)
}

func TestEmptyListIsArray(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)
	rec := s.do(t, http.MethodGet, "/api/achievements", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateValidation(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"no title", `{"date":"2024-03-10","ageAtEvent":{"years":1,"months":0,"days":0}}`, "title is required"},
		{"no date", `{"title":"x","ageAtEvent":{"years":1,"months":0,"days":0}}`, "date is required"},
		{"no age", `{"date":"2024-03-10","title":"x"}`, "ageAtEvent is required"},
		{"age not numbers", `{"date":"2024-03-10","title":"x","ageAtEvent":{"years":"one","months":0,"days":0}}`, "Invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/achievements", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeAs[dto.ErrorResponse](t, rec).Message, tt.msg)
		})
	}
}

func TestUpdateAndGet(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)
	created := decodeAs[dto.AchievementResponse](t, s.do(t, http.MethodPost, "/api/achievements", walkBody))

	rec := s.do(t, http.MethodPut, "/api/achievements/"+created.ID,
		`{"date":"2024-03-11","title":"Walked alone","ageAtEvent":{"years":1,"months":1,"days":27}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeAs[dto.AchievementResponse](t, rec)
	assert.Equal(t, "Walked alone", updated.Title)
	assert.Equal(t, []string{}, updated.Tags)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got := decodeAs[dto.AchievementResponse](t, s.do(t, http.MethodGet, "/api/achievements/"+created.ID, ""))
	assert.Equal(t, updated, got)

	rec = s.do(t, http.MethodPut, "/api/achievements/nope", walkBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Achievement not found", decodeAs[dto.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodPut, "/api/achievements/"+created.ID,
		`{"date":"2024-03-11","title":"x","ageAtEvent":{"years":1,"days":27}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)
	created := decodeAs[dto.AchievementResponse](t, s.do(t, http.MethodPost, "/api/achievements", walkBody))

	rec := s.do(t, http.MethodDelete, "/api/achievements/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.DeleteResponse{Message: "Achievement deleted successfully", ID: created.ID}, decodeAs[dto.DeleteResponse](t, rec))

	for i := 0; i < 2; i++ {
		rec = s.do(t, http.MethodDelete, "/api/achievements/"+created.ID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestPhotoEndpoints(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)
	created := decodeAs[dto.AchievementResponse](t, s.do(t, http.MethodPost, "/api/achievements", walkBody))

	rec := s.upload(t, created.ID, "photo", "walk.png", pngBytes)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	withPhoto := decodeAs[dto.AchievementResponse](t, rec)
	require.NotNil(t, withPhoto.Photo)
	assert.True(t, strings.HasPrefix(*withPhoto.Photo, "http://localhost/photos/walk-"))
	assert.Equal(t, 1, s.store.Len())

	rec = s.do(t, http.MethodDelete, "/api/achievements/"+created.ID+"/photo", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeAs[dto.AchievementResponse](t, rec).Photo)
	assert.Zero(t, s.store.Len())

	rec = s.do(t, http.MethodDelete, "/api/achievements/"+created.ID+"/photo", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Photo not found", decodeAs[dto.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodDelete, "/api/achievements/nope/photo", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Achievement not found", decodeAs[dto.ErrorResponse](t, rec).Message)
}

func TestUpdateWithoutPhotoURLKeepsPhoto(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)
	created := decodeAs[dto.AchievementResponse](t, s.do(t, http.MethodPost, "/api/achievements", walkBody))
	rec := s.upload(t, created.ID, "photo", "walk.png", pngBytes)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	photo := decodeAs[dto.AchievementResponse](t, rec).Photo
	require.NotNil(t, photo)

	rec = s.do(t, http.MethodPut, "/api/achievements/"+created.ID,
		`{"date":"2024-03-10","title":"Walked alone","ageAtEvent":{"years":1,"months":1,"days":26}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	kept := decodeAs[dto.AchievementResponse](t, rec)
	assert.Equal(t, "Walked alone", kept.Title)
	require.NotNil(t, kept.Photo)
	assert.Equal(t, *photo, *kept.Photo)
	assert.Equal(t, 1, s.store.Len())

	rec = s.do(t, http.MethodPut, "/api/achievements/"+created.ID,
		`{"date":"2024-03-10","title":"Walked alone","ageAtEvent":{"years":1,"months":1,"days":26},"photoUrl":""}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, decodeAs[dto.AchievementResponse](t, rec).Photo)
	assert.Zero(t, s.store.Len())
}

func TestServePhotoFile(t *testing.T) {
	store, err := photos.NewMemoryStore("", 0)
	require.NoError(t, err)
	url, err := store.Upload(context.Background(), pngBytes, "walk.png")
	require.NoError(t, err)
	key := url[strings.LastIndex(url, "/")+1:]

	mux := http.NewServeMux()
	mux.HandleFunc("GET /photos/{key}", NewPhotoFilesHandler(store).Serve)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos/"+key, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, pngBytes, rec.Body.Bytes())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos/other.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Photo not found", decodeAs[dto.ErrorResponse](t, rec).Message)
}

func TestUploadErrors(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 16)
	created := decodeAs[dto.AchievementResponse](t, s.do(t, http.MethodPost, "/api/achievements", walkBody))

	rec := s.upload(t, created.ID, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded", decodeAs[dto.ErrorResponse](t, rec).Message)

	rec = s.upload(t, created.ID, "picture", "walk.png", pngBytes[:8])
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.upload(t, created.ID, "photo", "walk.png", pngBytes)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = s.upload(t, created.ID, "photo", "notes.txt", []byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.upload(t, "nope", "photo", "walk.png", pngBytes[:8])
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, s.store.Len())
}

type failingRepo struct {
	*achievements.MemoryRepository
}

func (failingRepo) List(context.Context) ([]models.Achievement, error) {
	return nil, errors.New("connection refused")
}

func TestListBackendFailureIsGeneric(t *testing.T) {
	s := newTestServer(t, failingRepo{achievements.NewMemoryRepository()}, 0)

	rec := s.do(t, http.MethodGet, "/api/achievements", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeAs[dto.ErrorResponse](t, rec)
	assert.Equal(t, "Internal server error while fetching achievements", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestProfile(t *testing.T) {
	s := newTestServer(t, achievements.NewMemoryRepository(), 0)

	rec := s.do(t, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Profile not found", decodeAs[dto.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodPut, "/api/profile", `{"nickname":"Mochi","gender":"female"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "birthday is required", decodeAs[dto.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodPut, "/api/profile", `{"nickname":"Mochi","gender":"female","birthday":"2023-01-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPut, "/api/profile", `{"nickname":"Dango","gender":"male","birthday":"2023-01-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeAs[dto.ProfileResponse](t, s.do(t, http.MethodGet, "/api/profile", ""))
	assert.Equal(t, "Dango", got.Nickname)
	assert.Equal(t, "male", got.Gender)
	assert.Equal(t, "2023-01-15", got.Birthday)
}

type fakeProbe struct {
	now time.Time
	err error
}

func (p fakeProbe) Ping(context.Context) error { return p.err }
func (p fakeProbe) Now(context.Context) (time.Time, error) { return p.now, p.err }

func TestHealth(t *testing.T) {
	ts := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	rec := httptest.NewRecorder()
	NewHealthHandler(fakeProbe{now: ts}, logging.Nop()).HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"UP","postgres":"Connected","time":"2024-03-10T08:00:00.000Z"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHealthHandler(fakeProbe{err: errors.New("dial tcp: refused")}, logging.Nop()).HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"DOWN","postgres":"Connection Error","error":"dial tcp: refused"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHealthHandler(nil, logging.Nop()).HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Disabled", decodeAs[dto.HealthResponse](t, rec).Postgres)

	rec = httptest.NewRecorder()
	NewHealthHandler(fakeProbe{err: errors.New("down")}, logging.Nop()).ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
