package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/utils"
)

// writeError maps a service error onto the response. op names the operation
// in the generic 500 message, e.g. "creating achievement".
func writeError(ctx context.Context, w http.ResponseWriter, log logging.Logger, err error, op, notFound string) {
	if msg, ok := common.IsValidation(err); ok {
		log.Debug(ctx, "rejected request", "op", op, "reason", msg)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", msg)
		return
	}

	switch {
	case errors.Is(err, common.ErrPhotoNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Photo not found")
	case errors.Is(err, common.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", notFound)
	case errors.Is(err, common.ErrPhotoTooLarge):
		utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Payload Too Large", "Photo exceeds the maximum upload size")
	default:
		log.Error(ctx, "request failed", "op", op, "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error",
			fmt.Sprintf("Internal server error while %s", op))
	}
}
