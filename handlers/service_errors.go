package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/services"
	"github.com/cictrix/hris-backend/utils"
)

// HandleServiceError maps domain errors to HTTP responses
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	message := services.GetErrorMessage(err)
	details := services.GetErrorDetails(err)

	switch {
	case services.IsNotFoundError(err):
		if werr := utils.WriteNotFound(w, message); werr != nil {
			logger.Error("failed to write not found response", zap.Error(werr))
		}

	case services.IsValidationError(err):
		if werr := utils.WriteBadRequest(w, message, details); werr != nil {
			logger.Error("failed to write bad request response", zap.Error(werr))
		}

	case services.IsUnauthorizedError(err):
		if werr := utils.WriteUnauthorized(w, message); werr != nil {
			logger.Error("failed to write unauthorized response", zap.Error(werr))
		}

	case services.IsForbiddenError(err):
		if werr := utils.WriteForbidden(w, message); werr != nil {
			logger.Error("failed to write forbidden response", zap.Error(werr))
		}

	case services.IsUnimplementedError(err):
		if werr := utils.WriteNotImplemented(w, message); werr != nil {
			logger.Error("failed to write not implemented response", zap.Error(werr))
		}

	case services.IsInternalError(err):
		logger.Error("internal server error", zap.Error(err))
		if werr := utils.WriteInternalServerError(w, message); werr != nil {
			logger.Error("failed to write internal error response", zap.Error(werr))
		}

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		if werr := utils.WriteInternalServerError(w, "An unexpected error occurred"); werr != nil {
			logger.Error("failed to write internal error response", zap.Error(werr))
		}
	}
}

// HandleValidationError handles validation errors from request parsing
func HandleValidationError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if utils.IsValidationError(err) {
		fields := utils.GetValidationFields(err)
		details := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			details[k] = v
		}
		if werr := utils.WriteBadRequest(w, "Validation failed", details); werr != nil {
			logger.Error("failed to write validation error response", zap.Error(werr))
		}
		return
	}

	if werr := utils.WriteBadRequest(w, err.Error(), nil); werr != nil {
		logger.Error("failed to write validation error response", zap.Error(werr))
	}
}
