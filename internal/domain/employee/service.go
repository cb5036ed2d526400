package employee

import "context"

// EmployeeService manages the employees of the caller's current company.
// Mutations require the caller to hold the admin role in that company; the
// check is re-derived from the store on every call.
type EmployeeService interface {
	// List returns all employees of the caller's current company, joined with
	// user and role data. Open to any member of the company.
	List(ctx context.Context, callerID int64) ([]EmployeeDetail, error)
	// Invite adds an already-registered user (looked up by email) to the
	// caller's current company with the staff role.
	Invite(ctx context.Context, callerID int64, req InviteEmployeeRequest) (Employee, error)
	// Remove deletes an employee row of the caller's current company.
	Remove(ctx context.Context, callerID int64, employeeID int64) error
	// UpdateRole reassigns an employee to another role of the same company.
	UpdateRole(ctx context.Context, callerID int64, req UpdateEmployeeRoleRequest) (Employee, error)
}
