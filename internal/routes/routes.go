package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"MILESTONES_BACK-END/internal/handlers"
)

// SetupRoutes configures all application routes on a new mux. photoFiles is
// nil unless photos are kept in memory.
func SetupRoutes(healthHandler *handlers.HealthHandler, achievementsHandler *handlers.AchievementsHandler, profileHandler *handlers.ProfileHandler, photoFiles *handlers.PhotoFilesHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check routes
	mux.HandleFunc("GET /api/health", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// Achievement routes
	mux.HandleFunc("GET /api/achievements", achievementsHandler.List)
	mux.HandleFunc("POST /api/achievements", achievementsHandler.Create)
	mux.HandleFunc("GET /api/achievements/{id}", achievementsHandler.Get)
	mux.HandleFunc("PUT /api/achievements/{id}", achievementsHandler.Update)
	mux.HandleFunc("DELETE /api/achievements/{id}", achievementsHandler.Delete)
	mux.HandleFunc("POST /api/achievements/{id}/photo", achievementsHandler.UploadPhoto)
	mux.HandleFunc("DELETE /api/achievements/{id}/photo", achievementsHandler.DeletePhoto)

	// Profile routes
	mux.HandleFunc("GET /api/profile", profileHandler.Get)
	mux.HandleFunc("PUT /api/profile", profileHandler.Put)

	if photoFiles != nil {
		mux.HandleFunc("GET /photos/{key}", photoFiles.Serve)
	}

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", healthHandler.Root)

	return mux
}
