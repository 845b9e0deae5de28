package handlers

import (
	"net/http"

	"MILESTONES_BACK-END/internal/dto"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/services"
	"MILESTONES_BACK-END/internal/utils"
)

type ProfileHandler struct {
	svc *services.ProfileService
	log logging.Logger
}

func NewProfileHandler(svc *services.ProfileService, log logging.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: log}
}

// Get godoc
// @Summary      Get the child profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.log, err, "fetching profile", "Profile not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileResponse(p))
}

// Put godoc
// @Summary      Create or update the child profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.ProfileRequest  true  "Profile payload"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "birthday must be a date in YYYY-MM-DD format")
		return
	}

	p, err := h.svc.Upsert(r.Context(), in)
	if err != nil {
		writeError(r.Context(), w, h.log, err, "saving profile", "Profile not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileResponse(p))
}
