package company

import (
	"time"

	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	OwnerID         int64     `json:"owner_id"`
	Description     *string   `json:"description,omitempty"`
	Address         *string   `json:"address,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Website         *string   `json:"website,omitempty"`
	TaxNumber       *string   `json:"tax_number,omitempty"`
	BusinessLicense *string   `json:"business_license,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		OwnerID:         c.OwnerID,
		Description:     c.Description,
		Address:         c.Address,
		Phone:           c.Phone,
		Email:           c.Email,
		Website:         c.Website,
		TaxNumber:       c.TaxNumber,
		BusinessLicense: c.BusinessLicense,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

type CreateCompanyRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Address         *string `json:"address,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Website         *string `json:"website,omitempty"`
	TaxNumber       *string `json:"tax_number,omitempty"`
	BusinessLicense *string `json:"business_license,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
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

// UpdateCompanyRequest overwrites the full editable profile. Absent optional
// fields are persisted as NULL, not left untouched.
type UpdateCompanyRequest struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Address         *string `json:"address,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Website         *string `json:"website,omitempty"`
	TaxNumber       *string `json:"tax_number,omitempty"`
	BusinessLicense *string `json:"business_license,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetCurrentCompanyRequest struct {
	CompanyID int64 `json:"company_id"`
}

func (r *SetCurrentCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CurrentCompanyResponse struct {
	CurrentCompany *CompanyResponse `json:"current_company"`
}
