package response

import (
	"errors"
	"net/http"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/auth"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/company"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/employee"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/role"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/user"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/verification"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token cookie not found")
	case errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token cookie is empty")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrEmailDeliveryFailed):
		InternalServerError(w, "Failed to send verification email")

	// Verification code errors
	case errors.Is(err, verification.ErrCodeInvalidOrExpired):
		BadRequest(w, "Verification code is invalid or expired", nil)
	case errors.Is(err, verification.ErrTooManyRequests):
		TooManyRequests(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserAlreadyExists):
		Conflict(w, "User already exists")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already taken")
	case errors.Is(err, company.ErrNotCompanyOwner):
		Forbidden(w, "Only the company owner can do this")
	case errors.Is(err, company.ErrNotCompanyMember):
		Forbidden(w, "You are not a member of this company")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAlreadyEmployee):
		Conflict(w, "User is already an employee of this company")
	case errors.Is(err, employee.ErrAdminRequired):
		Forbidden(w, "Admin role required")
	case errors.Is(err, employee.ErrNoCurrentCompany):
		BadRequest(w, "No current company selected", nil)
	case errors.Is(err, employee.ErrEmployeeNotInCompany):
		NotFound(w, "Employee not found in current company")
	case errors.Is(err, employee.ErrRoleNotInCompany):
		NotFound(w, "Role not found in current company")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrDefaultRoleMissing):
		InternalServerError(w, "Default role is missing for this company")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
