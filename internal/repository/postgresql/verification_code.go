package postgresql

import (
	"context"
	"time"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/verification"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
)

type codeRepositoryImpl struct {
	db *database.DB
}

func NewCodeRepository(db *database.DB) verification.CodeRepository {
	return &codeRepositoryImpl{db: db}
}

// CountSince implements verification.CodeRepository.
func (r *codeRepositoryImpl) CountSince(ctx context.Context, email string, since time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM email_verification_codes WHERE email = $1 AND created_at >= $2`,
		email, since,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByEmail implements verification.CodeRepository.
func (r *codeRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM email_verification_codes WHERE email = $1`, email)
	return err
}

// Create implements verification.CodeRepository.
func (r *codeRepositoryImpl) Create(ctx context.Context, code verification.EmailVerificationCode) (verification.EmailVerificationCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_verification_codes (email, code, expires_at, used)
		VALUES ($1, $2, $3, false)
		RETURNING id, email, code, expires_at, used, created_at
	`

	var created verification.EmailVerificationCode
	err := q.QueryRow(ctx, query, code.Email, code.Code, code.ExpiresAt).Scan(
		&created.ID,
		&created.Email,
		&created.Code,
		&created.ExpiresAt,
		&created.Used,
		&created.CreatedAt,
	)
	if err != nil {
		return verification.EmailVerificationCode{}, err
	}
	return created, nil
}

// GetValid implements verification.CodeRepository.
func (r *codeRepositoryImpl) GetValid(ctx context.Context, email string, code string, now time.Time) (verification.EmailVerificationCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, code, expires_at, used, created_at
		FROM email_verification_codes
		WHERE email = $1 AND code = $2 AND used = false AND expires_at > $3
	`

	var found verification.EmailVerificationCode
	err := q.QueryRow(ctx, query, email, code, now).Scan(
		&found.ID,
		&found.Email,
		&found.Code,
		&found.ExpiresAt,
		&found.Used,
		&found.CreatedAt,
	)
	if err != nil {
		return verification.EmailVerificationCode{}, err
	}
	return found, nil
}

// MarkUsed implements verification.CodeRepository.
func (r *codeRepositoryImpl) MarkUsed(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE email_verification_codes SET used = true WHERE id = $1`, id)
	return err
}
