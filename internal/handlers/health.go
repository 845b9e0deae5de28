package handlers

import (
	"context"
	"net/http"
	"time"

	"MILESTONES_BACK-END/internal/dto"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/utils"
)

// DBProbe is satisfied by *dbx.Probe.
type DBProbe interface {
	Ping(ctx context.Context) error
	Now(ctx context.Context) (time.Time, error)
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	db  DBProbe
	log logging.Logger
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance. A nil db means the
// server runs on in-memory stores.
func NewHealthHandler(db DBProbe, log logging.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log, now: time.Now}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports database connectivity and the database clock
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
			Status:   "UP",
			Postgres: "Disabled",
			Time:     dto.FormatTimestamp(h.now()),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	now, err := h.db.Now(ctx)
	if err != nil {
		h.log.Error(r.Context(), "health check failed with DB error", "error", err)
		utils.WriteJSONResponse(w, http.StatusInternalServerError, dto.HealthResponse{
			Status:   "DOWN",
			Postgres: "Connection Error",
			Error:    err.Error(),
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:   "UP",
		Postgres: "Connected",
		Time:     dto.FormatTimestamp(now),
	})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (includes database connectivity)
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ready", Postgres: "Disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Postgres: "Connection Error",
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ready", Postgres: "Connected"})
}

// Root answers GET / with a plain banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Milestones backend is running."))
}
