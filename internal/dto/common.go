package dto

import (
	"strings"
	"time"
)

// timestampLayout matches what browsers produce with Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// nullIfBlank returns nil for a missing or all-whitespace value and s
// unchanged otherwise.
func nullIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
