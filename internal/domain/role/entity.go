package role

// Role is scoped to exactly one company; names are only meaningful within
// that scope.
type Role struct {
	ID          int64
	CompanyID   int64
	Name        string
	Description string
}

const (
	// NameAdmin grants mutation rights over a company's employees.
	NameAdmin = "admin"
	// NameStaff is the default role assigned to invited employees.
	NameStaff = "staff"
)
