package employee

import (
	"time"

	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID        int64       `json:"id"`
	CompanyID int64       `json:"company_id"`
	User      UserSummary `json:"user"`
	Role      RoleSummary `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type RoleSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewEmployeeResponse(d EmployeeDetail) EmployeeResponse {
	return EmployeeResponse{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		User: UserSummary{
			ID:       d.UserID,
			Username: d.Username,
		},
		Role: RoleSummary{
			ID:          d.RoleID,
			Name:        d.RoleName,
			Description: d.RoleDescription,
		},
		CreatedAt: d.CreatedAt,
	}
}

// MembershipResponse is the flat shape returned by writes, before the user
// and role rows are joined in.
type MembershipResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CompanyID int64     `json:"company_id"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMembershipResponse(e Employee) MembershipResponse {
	return MembershipResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		CompanyID: e.CompanyID,
		RoleID:    e.RoleID,
		CreatedAt: e.CreatedAt,
	}
}

type InviteEmployeeRequest struct {
	Email string `json:"email"`
}

func (r *InviteEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRoleRequest struct {
	EmployeeID int64 `json:"employee_id"`
	RoleID     int64 `json:"role_id"`
}

func (r *UpdateEmployeeRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.RoleID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
