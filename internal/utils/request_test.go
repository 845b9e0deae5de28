package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MILESTONES_BACK-END/internal/dto"
)

func decode(t *testing.T, body string, v interface{}) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	return rec, DecodeAndValidate(rec, req, v)
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestDecodeAndValidateAchievement(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"valid", `{"date":"2024-03-10","title":"Walk","ageAtEvent":{"years":1,"months":1,"days":26}}`, ""},
		{"zero age is present", `{"date":"2024-03-10","title":"Born","ageAtEvent":{"years":0,"months":0,"days":0}}`, ""},
		{"missing title", `{"date":"2024-03-10","title":"  ","ageAtEvent":{"years":1,"months":0,"days":0}}`, "title is required"},
		{"missing age", `{"date":"2024-03-10","title":"Walk"}`, "ageAtEvent is required"},
		{"partial age", `{"date":"2024-03-10","title":"Walk","ageAtEvent":{"years":1,"days":2}}`, "ageAtEvent.months is required"},
		{"negative age", `{"date":"2024-03-10","title":"Walk","ageAtEvent":{"years":-1,"months":0,"days":0}}`, "ageAtEvent.years must be at least 0"},
		{"bad date", `{"date":"10.03.2024","title":"Walk","ageAtEvent":{"years":1,"months":0,"days":0}}`, "date must be a date in YYYY-MM-DD format"},
		{"bad photo url", `{"date":"2024-03-10","title":"Walk","ageAtEvent":{"years":1,"months":0,"days":0},"photoUrl":"nope"}`, "photoUrl must be a valid URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.AchievementRequest
			rec, err := decode(t, tt.body, &req)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := errorBody(t, rec)
			assert.Equal(t, "Bad Request", body.Error)
			assert.Contains(t, body.Message, tt.wantMsg)
		})
	}
}

func TestDecodeAndValidateProfile(t *testing.T) {
	var req dto.ProfileRequest
	rec, err := decode(t, `{"nickname":"Mochi","gender":"robot","birthday":"2023-01-15"}`, &req)
	require.Error(t, err)
	assert.Equal(t, "gender must be one of: male, female, other", errorBody(t, rec).Message)

	req = dto.ProfileRequest{}
	_, err = decode(t, `{"nickname":"Mochi","gender":"FEMALE","birthday":"2023-01-15"}`, &req)
	require.NoError(t, err)
	assert.Equal(t, "female", req.Gender)
}

func TestDecodeJSONRequestErrors(t *testing.T) {
	var v map[string]any
	rec, err := decode(t, ``, &v)
	require.Error(t, err)
	assert.Equal(t, "Request body is required", errorBody(t, rec).Message)

	rec, err = decode(t, `{"date":`, &v)
	require.Error(t, err)
	assert.Equal(t, "Invalid JSON body", errorBody(t, rec).Message)
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusNotFound, "Not Found", "Achievement not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Not Found","message":"Achievement not found"}`, rec.Body.String())
}
