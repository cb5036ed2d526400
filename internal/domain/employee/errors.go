package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrAlreadyEmployee      = errors.New("user is already an employee of this company")
	ErrAdminRequired        = errors.New("admin role required")
	ErrNoCurrentCompany     = errors.New("no current company selected")
	ErrEmployeeNotInCompany = errors.New("employee does not belong to this company")
	ErrRoleNotInCompany     = errors.New("role does not belong to this company")
)
