package postgresql

import (
	"context"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/user"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, email, password_hash, source, current_company_id, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Username,
		&found.Email,
		&found.PasswordHash,
		&found.Source,
		&found.CurrentCompanyID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	return scanUser(q.QueryRow(ctx, query, username))
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, email, password_hash, source, current_company_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns + `
	`

	return scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Source,
		newUser.CurrentCompanyID,
	))
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// SetCurrentCompany implements user.UserRepository.
func (r *userRepositoryImpl) SetCurrentCompany(ctx context.Context, userID int64, companyID int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET current_company_id = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, companyID, userID)
	return err
}
