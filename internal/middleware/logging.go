package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"

	"MILESTONES_BACK-END/internal/logging"
)

// Logging logs one line per request with the captured status and size. The
// request id comes along through the context.
func Logging(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", m.Code,
				"bytes", m.Written,
				"duration", m.Duration,
			}

			switch {
			case m.Code >= http.StatusInternalServerError:
				log.Warn(r.Context(), "request", args...)
			default:
				log.Info(r.Context(), "request", args...)
			}
		})
	}
}
