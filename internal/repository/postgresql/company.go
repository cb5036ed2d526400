package postgresql

import (
	"context"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/company"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `id, name, owner_id, description, address, phone, email, website, tax_number, business_license, created_at, updated_at`

func scanCompany(row pgx.Row) (company.Company, error) {
	var found company.Company
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.OwnerID,
		&found.Description,
		&found.Address,
		&found.Phone,
		&found.Email,
		&found.Website,
		&found.TaxNumber,
		&found.BusinessLicense,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

func collectCompanies(rows pgx.Rows) ([]company.Company, error) {
	defer rows.Close()
	var companies []company.Company
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, found)
	}
	return companies, rows.Err()
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(q.QueryRow(ctx, query, id))
}

// GetByName implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByName(ctx context.Context, name string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1`
	return scanCompany(q.QueryRow(ctx, query, name))
}

// GetOwned implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetOwned(ctx context.Context, id int64, ownerID int64) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND owner_id = $2`
	return scanCompany(q.QueryRow(ctx, query, id, ownerID))
}

// ListByOwner implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListByOwner(ctx context.Context, ownerID int64) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE owner_id = $1 ORDER BY id`
	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return collectCompanies(rows)
}

// ListByEmployee implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListByEmployee(ctx context.Context, userID int64) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, c.owner_id, c.description, c.address, c.phone, c.email,
		       c.website, c.tax_number, c.business_license, c.created_at, c.updated_at
		FROM companies c
		JOIN employees e ON e.company_id = c.id
		WHERE e.user_id = $1
		ORDER BY c.id
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectCompanies(rows)
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (name, owner_id, description, address, phone, email, website, tax_number, business_license)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + companyColumns + `
	`

	return scanCompany(q.QueryRow(ctx, query,
		newCompany.Name,
		newCompany.OwnerID,
		newCompany.Description,
		newCompany.Address,
		newCompany.Phone,
		newCompany.Email,
		newCompany.Website,
		newCompany.TaxNumber,
		newCompany.BusinessLicense,
	))
}

// Update implements company.CompanyRepository. Optional fields are overwritten
// with NULL when absent.
func (r *companyRepositoryImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $1, description = $2, address = $3, phone = $4, email = $5,
		    website = $6, tax_number = $7, business_license = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + companyColumns + `
	`

	return scanCompany(q.QueryRow(ctx, query,
		req.Name,
		req.Description,
		req.Address,
		req.Phone,
		req.Email,
		req.Website,
		req.TaxNumber,
		req.BusinessLicense,
		id,
	))
}

// Delete implements company.CompanyRepository.
func (r *companyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}

// ExistsByNameExcept implements company.CompanyRepository.
func (r *companyRepositoryImpl) ExistsByNameExcept(ctx context.Context, name string, exceptID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE name = $1 AND id <> $2)`,
		name, exceptID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// IsOwnerOrEmployee implements company.CompanyRepository.
func (r *companyRepositoryImpl) IsOwnerOrEmployee(ctx context.Context, companyID int64, userID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM companies WHERE id = $1 AND owner_id = $2
			UNION ALL
			SELECT 1 FROM employees WHERE company_id = $1 AND user_id = $2
		)
	`

	var ok bool
	err := q.QueryRow(ctx, query, companyID, userID).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}
