package handlers

import (
	"net/http"
	"strconv"

	"MILESTONES_BACK-END/internal/photos"
	"MILESTONES_BACK-END/internal/utils"
)

// PhotoFiles looks up stored photo bytes by key. The in-memory photo store
// implements it; bucket backends serve their own URLs.
type PhotoFiles interface {
	Lookup(key string) (photos.Object, bool)
}

// PhotoFilesHandler serves photos kept by the server itself
type PhotoFilesHandler struct {
	files PhotoFiles
}

func NewPhotoFilesHandler(files PhotoFiles) *PhotoFilesHandler {
	return &PhotoFilesHandler{files: files}
}

// Serve handles GET /photos/{key}
// @Summary Fetch a stored photo
// @Description Only mounted with PHOTO_BACKEND=memory
// @Tags photos
// @Produce image/jpeg,image/png,image/gif,image/webp
// @Param key path string true "Photo key"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /photos/{key} [get]
func (h *PhotoFilesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	obj, ok := h.files.Lookup(r.PathValue("key"))
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Photo not found")
		return
	}
	// keys carry an upload timestamp so a URL never changes content
	w.Header().Set("Content-Type", obj.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(obj.Data)
}
