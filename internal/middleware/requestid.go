package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"MILESTONES_BACK-END/internal/logging"
)

// RequestID reuses the client's X-Request-ID or generates one, and puts it on
// the response and the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), requestID)))
	})
}

// GetRequestID extracts the request ID from the context.
func GetRequestID(ctx context.Context) string {
	return logging.RequestID(ctx)
}
