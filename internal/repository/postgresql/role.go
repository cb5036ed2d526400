package postgresql

import (
	"context"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/role"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id int64) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	var found role.Role
	err := q.QueryRow(ctx,
		`SELECT id, company_id, name, description FROM roles WHERE id = $1`, id,
	).Scan(&found.ID, &found.CompanyID, &found.Name, &found.Description)
	if err != nil {
		return role.Role{}, err
	}
	return found, nil
}

// GetByName implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByName(ctx context.Context, companyID int64, name string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	var found role.Role
	err := q.QueryRow(ctx,
		`SELECT id, company_id, name, description FROM roles WHERE company_id = $1 AND name = $2`,
		companyID, name,
	).Scan(&found.ID, &found.CompanyID, &found.Name, &found.Description)
	if err != nil {
		return role.Role{}, err
	}
	return found, nil
}

// ListByCompany implements role.RoleRepository.
func (r *roleRepositoryImpl) ListByCompany(ctx context.Context, companyID int64) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, company_id, name, description FROM roles WHERE company_id = $1 ORDER BY id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var found role.Role
		if err := rows.Scan(&found.ID, &found.CompanyID, &found.Name, &found.Description); err != nil {
			return nil, err
		}
		roles = append(roles, found)
	}
	return roles, rows.Err()
}

// CreateMany implements role.RoleRepository.
func (r *roleRepositoryImpl) CreateMany(ctx context.Context, roles []role.Role) error {
	q := GetQuerier(ctx, r.db)

	for _, newRole := range roles {
		_, err := q.Exec(ctx,
			`INSERT INTO roles (company_id, name, description) VALUES ($1, $2, $3)`,
			newRole.CompanyID, newRole.Name, newRole.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteByCompany implements role.RoleRepository.
func (r *roleRepositoryImpl) DeleteByCompany(ctx context.Context, companyID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM roles WHERE company_id = $1`, companyID)
	return err
}

// DeletePermissionsByCompany implements role.RoleRepository.
func (r *roleRepositoryImpl) DeletePermissionsByCompany(ctx context.Context, companyID int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM role_permissions
		WHERE role_id IN (SELECT id FROM roles WHERE company_id = $1)
	`
	_, err := q.Exec(ctx, query, companyID)
	return err
}
