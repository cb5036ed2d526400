package verification

import (
	"context"
	"time"
)

type CodeRepository interface {
	// CountSince counts code rows for the email created at or after the
	// cutoff, used rows included. Rate limits count requests, not live codes.
	CountSince(ctx context.Context, email string, since time.Time) (int, error)
	DeleteByEmail(ctx context.Context, email string) error
	Create(ctx context.Context, code EmailVerificationCode) (EmailVerificationCode, error)
	// GetValid returns the unused, unexpired record matching (email, code).
	GetValid(ctx context.Context, email string, code string, now time.Time) (EmailVerificationCode, error)
	MarkUsed(ctx context.Context, id int64) error
}
