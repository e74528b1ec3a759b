package response

import (
	"errors"
	"net/http"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/auth"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/employee"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google login is not configured", nil)

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNameExists):
		Conflict(w, "An employee with this name already exists")
	case errors.Is(err, employee.ErrInvalidName):
		BadRequest(w, "Employee name must not be empty", nil)
	case errors.Is(err, employee.ErrPartialDeletion):
		PartialDeletion(w, "Employee deletion incomplete, retry deletion")

	// Time record errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrDuplicateRecord):
		Conflict(w, "A time record already exists for this employee and date")
	case errors.Is(err, timerecord.ErrUnknownStatus):
		BadRequest(w, "Unknown attendance status", nil)
	case errors.Is(err, timerecord.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
