package role

import "context"

type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (Role, error)
	// GetByName looks a role up within a single company's scope.
	GetByName(ctx context.Context, companyID int64, name string) (Role, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Role, error)
	CreateMany(ctx context.Context, roles []Role) error
	DeleteByCompany(ctx context.Context, companyID int64) error
	// DeletePermissionsByCompany removes role_permissions rows for all roles
	// of the company; part of the company delete cascade.
	DeletePermissionsByCompany(ctx context.Context, companyID int64) error
}
