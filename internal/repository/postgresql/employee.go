package postgresql

import (
	"context"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/employee"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var found employee.Employee
	err := row.Scan(&found.ID, &found.UserID, &found.CompanyID, &found.RoleID, &found.CreatedAt)
	return found, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, user_id, company_id, role_id, created_at FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByUserAndCompany implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserAndCompany(ctx context.Context, userID int64, companyID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, user_id, company_id, role_id, created_at FROM employees WHERE user_id = $1 AND company_id = $2`
	return scanEmployee(q.QueryRow(ctx, query, userID, companyID))
}

// ListByCompany implements employee.EmployeeRepository. Each row is joined
// with its user and role.
func (r *employeeRepositoryImpl) ListByCompany(ctx context.Context, companyID int64) ([]employee.EmployeeDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.company_id, e.role_id, e.created_at,
		       u.username, r.name, r.description
		FROM employees e
		JOIN users u ON u.id = e.user_id
		JOIN roles r ON r.id = e.role_id
		WHERE e.company_id = $1
		ORDER BY e.id
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []employee.EmployeeDetail
	for rows.Next() {
		var d employee.EmployeeDetail
		err := rows.Scan(
			&d.ID, &d.UserID, &d.CompanyID, &d.RoleID, &d.CreatedAt,
			&d.Username, &d.RoleName, &d.RoleDescription,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, company_id, role_id)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, company_id, role_id, created_at
	`
	return scanEmployee(q.QueryRow(ctx, query, newEmployee.UserID, newEmployee.CompanyID, newEmployee.RoleID))
}

// ExistsByUserAndCompany implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByUserAndCompany(ctx context.Context, userID int64, companyID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE user_id = $1 AND company_id = $2)`,
		userID, companyID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateRole implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateRole(ctx context.Context, id int64, roleID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET role_id = $1
		WHERE id = $2
		RETURNING id, user_id, company_id, role_id, created_at
	`
	return scanEmployee(q.QueryRow(ctx, query, roleID, id))
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

// DeleteByCompany implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteByCompany(ctx context.Context, companyID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM employees WHERE company_id = $1`, companyID)
	return err
}
