package response

import (
	"errors"
	"net/http"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/absence"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/adjustment"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/auth"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/ticket"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenMissing),
		errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())

	// Policy errors
	case errors.Is(err, policy.ErrCrossCompanyAccess),
		errors.Is(err, policy.ErrSelfOnly),
		errors.Is(err, policy.ErrReviewerRoleRequired),
		errors.Is(err, policy.ErrManagementRoleRequired),
		errors.Is(err, policy.ErrRoleAssignmentDenied):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCPFExists):
		Conflict(w, "CPF already registered")
	case errors.Is(err, user.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, user.ErrDeviceLimitReached):
		BadRequest(w, "Maximum number of authorized devices reached", nil)
	case errors.Is(err, user.ErrDeviceNotAuthorized):
		Forbidden(w, "Device not authorized for this account")
	case errors.Is(err, user.ErrDeviceIDRequired):
		BadRequest(w, "Device id is required", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrInsufficientRole):
		Forbidden(w, err.Error())

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCNPJExists):
		Conflict(w, "CNPJ already registered")
	case errors.Is(err, company.ErrCompanyHasStaff):
		Conflict(w, "Company still has linked employees")
	case errors.Is(err, company.ErrCompanyInactive):
		Forbidden(w, "Company is inactive")

	// Time record domain errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrInvalidRecordType):
		BadRequest(w, "Invalid time record type", nil)
	case errors.Is(err, timerecord.ErrUnauthorizedAccess):
		Forbidden(w, err.Error())

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absence.ErrAbsenceAlreadyProcessed):
		Conflict(w, "Absence has already been approved or rejected")
	case errors.Is(err, absence.ErrInvalidReviewStatus):
		BadRequest(w, err.Error(), nil)

	// Ticket domain errors
	case errors.Is(err, ticket.ErrTicketNotFound):
		NotFound(w, "Ticket not found")
	case errors.Is(err, ticket.ErrTicketAlreadyClosed):
		Conflict(w, "Ticket is already resolved or closed")
	case errors.Is(err, ticket.ErrResponseOnClosed):
		Conflict(w, "Cannot respond to a closed ticket")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")
	case errors.Is(err, adjustment.ErrAdjustmentAlreadyProcessed):
		Conflict(w, "Adjustment has already been approved or rejected")
	case errors.Is(err, adjustment.ErrInvalidReviewStatus):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
