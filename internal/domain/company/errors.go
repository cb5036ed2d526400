package company

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCompanyNameExists   = errors.New("company name already exists")
	ErrCompanyNameRequired = errors.New("company name cannot be empty")
	ErrCompanyIDRequired   = errors.New("company ID is required")
	ErrNotCompanyOwner     = errors.New("only the company owner can do this")
	ErrNotCompanyMember    = errors.New("user is not a member of this company")
)
