package handlers

import (
	"errors"
	"io"
	"net/http"

	"MILESTONES_BACK-END/internal/dto"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/photos"
	"MILESTONES_BACK-END/internal/services"
	"MILESTONES_BACK-END/internal/utils"
)

const achievementNotFound = "Achievement not found"

// multipartOverhead is the allowance for multipart headers and boundaries on
// top of the photo itself.
const multipartOverhead = 64 << 10

// AchievementsHandler manages achievement endpoints
type AchievementsHandler struct {
	svc       *services.AchievementService
	log       logging.Logger
	maxUpload int64
}

// NewAchievementsHandler creates a new AchievementsHandler. maxUpload <= 0
// means the default photo limit.
func NewAchievementsHandler(svc *services.AchievementService, log logging.Logger, maxUpload int64) *AchievementsHandler {
	if maxUpload <= 0 {
		maxUpload = photos.DefaultMaxUploadBytes
	}
	return &AchievementsHandler{svc: svc, log: log, maxUpload: maxUpload}
}

// List handles GET /api/achievements
// @Summary List achievements
// @Description Newest date first, ties broken by creation time
// @Tags achievements
// @Produce json
// @Success 200 {array} dto.AchievementResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/achievements [get]
func (h *AchievementsHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.log, err, "fetching achievements", achievementNotFound)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAchievementListResponse(rows))
}

// Get handles GET /api/achievements/{id}
// @Summary Get an achievement
// @Tags achievements
// @Produce json
// @Param id path string true "Achievement ID"
// @Success 200 {object} dto.AchievementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/achievements/{id} [get]
func (h *AchievementsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), w, h.log, err, "fetching achievement", achievementNotFound)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAchievementResponse(a))
}

// Create handles POST /api/achievements
// @Summary Create an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Param payload body dto.AchievementRequest true "Achievement payload"
// @Success 201 {object} dto.AchievementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/achievements [post]
func (h *AchievementsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AchievementRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return // Error already handled by DecodeAndValidate
	}
	in, err := req.ToInput()
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "date must be a date in YYYY-MM-DD format")
		return
	}

	a, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(r.Context(), w, h.log, err, "creating achievement", achievementNotFound)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewAchievementResponse(a))
}

// Update handles PUT /api/achievements/{id}
// @Summary Replace an achievement
// @Description Leaving photoUrl out keeps the current photo. An empty photoUrl clears it and deletes the stored image.
// @Tags achievements
// @Accept json
// @Produce json
// @Param id path string true "Achievement ID"
// @Param payload body dto.AchievementRequest true "Achievement payload"
// @Success 200 {object} dto.AchievementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/achievements/{id} [put]
func (h *AchievementsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.AchievementRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "date must be a date in YYYY-MM-DD format")
		return
	}

	a, err := h.svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(r.Context(), w, h.log, err, "updating achievement", achievementNotFound)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAchievementResponse(a))
}

// Delete handles DELETE /api/achievements/{id}
// @Summary Delete an achievement
// @Description Also removes the stored photo, best effort
// @Tags achievements
// @Produce json
// @Param id path string true "Achievement ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/achievements/{id} [delete]
func (h *AchievementsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(r.Context(), w, h.log, err, "deleting achievement", achievementNotFound)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DeleteResponse{Message: "Achievement deleted successfully", ID: id})
}

// UploadPhoto handles POST /api/achievements/{id}/photo
// @Summary Attach a photo
// @Description Multipart upload in field "photo"; images only, 5 MiB max
// @Tags achievements
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Achievement ID"
// @Param photo formData file true "Image file"
// @Success 200 {object} dto.AchievementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/achievements/{id}/photo [post]
func (h *AchievementsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Payload Too Large", "Photo exceeds the maximum upload size")
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "No file uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		writeError(r.Context(), w, h.log, err, "uploading photo", achievementNotFound)
		return
	}

	a, err := h.svc.AttachPhoto(r.Context(), r.PathValue("id"), data, header.Filename)
	if err != nil {
		writeError(r.Context(), w, h.log, err, "uploading photo", achievementNotFound)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAchievementResponse(a))
}

// DeletePhoto handles DELETE /api/achievements/{id}/photo
// @Summary Remove the photo
// @Tags achievements
// @Produce json
// @Param id path string true "Achievement ID"
// @Success 200 {object} dto.AchievementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/achievements/{id}/photo [delete]
func (h *AchievementsHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.DetachPhoto(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), w, h.log, err, "deleting photo", achievementNotFound)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAchievementResponse(a))
}
