package company

import "context"

// CompanyService is the tenancy layer. Every method takes the authenticated
// caller's user ID as resolved by the auth middleware; client-supplied ids are
// never trusted for authorization.
type CompanyService interface {
	// List returns the union of companies the user owns and companies where
	// the user has an employee row, de-duplicated by company id.
	List(ctx context.Context, userID int64) ([]Company, error)
	// Create inserts the company with the caller as owner, seeds the default
	// roles and creates the owner's admin employee row in one transaction.
	Create(ctx context.Context, userID int64, req CreateCompanyRequest) (Company, error)
	// Update overwrites the profile of a company the caller owns.
	Update(ctx context.Context, userID int64, req UpdateCompanyRequest) (Company, error)
	// Delete removes a company the caller owns together with its employees,
	// role permissions and roles, in one transaction.
	Delete(ctx context.Context, userID int64, companyID int64) error
	// GetCurrent returns the user's advisory current company, or nil.
	GetCurrent(ctx context.Context, userID int64) (*Company, error)
	// SetCurrent points the user at a company they own or belong to.
	SetCurrent(ctx context.Context, userID int64, companyID int64) (Company, error)
}
