package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP status codes and writes the error envelope.
// Domain messages carried by apperrors.CustomError are surfaced as the error message.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		RequestLogger(c).Error().Err(err).Int("status", status).Msg("Request failed")
	} else {
		RequestLogger(c).Debug().Err(err).Int("status", status).Msg("Request rejected")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err, "Validation failed")).WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, apperrors.Message(err, "Bad request"))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeConflict, apperrors.Message(err, "Conflict"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, apperrors.Message(err, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrExternalService):
		return http.StatusBadGateway,
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "External service unavailable")
	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
