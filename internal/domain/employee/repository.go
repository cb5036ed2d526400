package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByUserAndCompany(ctx context.Context, userID int64, companyID int64) (Employee, error)
	ListByCompany(ctx context.Context, companyID int64) ([]EmployeeDetail, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByUserAndCompany(ctx context.Context, userID int64, companyID int64) (bool, error)
	UpdateRole(ctx context.Context, id int64, roleID int64) (Employee, error)
	Delete(ctx context.Context, id int64) error
	DeleteByCompany(ctx context.Context, companyID int64) error
}
