package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"ophelia-market/internal/usecase"
	"ophelia-market/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps usecase errors onto the response envelope.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" validation failed", zap.Any("errors", vErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrUpload):
		log.Error(operation+" failed - storage", zap.Error(err))
		utils.ResponseBadGateway(w, "Image upload failed, the listing was not created")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeAndValidate decodes a JSON body into req and runs struct
// validation. It writes the 400 itself and reports false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}
