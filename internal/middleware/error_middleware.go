package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
	"github.com/mwss/sevaportal/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the wire error envelope
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDeactivated):
		respond(c, http.StatusForbidden, dto.ErrorCodeAccountDeactivated, "Account is deactivated")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Email already registered")
	case errors.Is(err, apperrors.ErrAllocationCollision):
		respond(c, http.StatusConflict, dto.ErrorCodeAllocationCollision, "Identifier already allocated")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrAdminNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Admin not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrResultNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Result not found")
	case errors.Is(err, apperrors.ErrAdmitCardNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Admit card not available for this student")
	case errors.Is(err, apperrors.ErrMembershipNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Membership not found")
	case errors.Is(err, apperrors.ErrMembershipCardNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Membership card not found")
	case errors.Is(err, apperrors.ErrVolunteerNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Volunteer application not found")
	case errors.Is(err, apperrors.ErrInquiryNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Inquiry not found")
	case errors.Is(err, apperrors.ErrSettingNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Setting not found")
	case errors.Is(err, apperrors.ErrPageNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Page not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
