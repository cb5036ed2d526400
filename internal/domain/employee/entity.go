package employee

import "time"

// Employee links a user to a company with exactly one role. A (UserID,
// CompanyID) pair is unique.
type Employee struct {
	ID        int64
	UserID    int64
	CompanyID int64
	RoleID    int64
	CreatedAt time.Time
}

// EmployeeDetail is an Employee joined with its user and role rows, as
// returned by list queries.
type EmployeeDetail struct {
	Employee
	Username        string
	RoleName        string
	RoleDescription string
}
