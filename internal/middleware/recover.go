package middleware

import (
	"net/http"
	"runtime/debug"

	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/utils"
)

// Recover turns a handler panic into a 500 so the server keeps serving.
func Recover(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error(r.Context(), "panic serving request",
					"method", r.Method, "path", r.URL.Path, "panic", rec, "stack", string(debug.Stack()))
				utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
