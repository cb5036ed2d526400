package fixtures

import "github.com/bizgrid/bizgrid-backend-go/internal/domain/role"

// DefaultRoles returns the two roles seeded for every new company. The admin
// role must come first: the company creator is attached to it.
func DefaultRoles(companyID int64) []role.Role {
	return []role.Role{
		{CompanyID: companyID, Name: role.NameAdmin, Description: "Company administrator"},
		{CompanyID: companyID, Name: role.NameStaff, Description: "Company staff"},
	}
}
