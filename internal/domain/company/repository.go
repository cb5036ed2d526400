package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (Company, error)
	GetByName(ctx context.Context, name string) (Company, error)
	// GetOwned returns the company only when ownerID actually owns it.
	GetOwned(ctx context.Context, id int64, ownerID int64) (Company, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Company, error)
	ListByEmployee(ctx context.Context, userID int64) ([]Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, id int64) error
	// ExistsByNameExcept reports whether another company (id != exceptID)
	// already uses the name. Pass exceptID = 0 to match any company.
	ExistsByNameExcept(ctx context.Context, name string, exceptID int64) (bool, error)
	// IsOwnerOrEmployee reports whether userID owns companyID or has an
	// employee row in it. Membership is always re-derived here, never taken
	// from client state.
	IsOwnerOrEmployee(ctx context.Context, companyID int64, userID int64) (bool, error)
}
