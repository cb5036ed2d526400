package verification

import "time"

// EmailVerificationCode is an ephemeral 6-digit code. Prior codes for the
// email are purged on insert, so at most one live code exists per email.
type EmailVerificationCode struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

const (
	// TTL is the lifetime of a code.
	TTL = 5 * time.Minute
	// MinuteWindowLimit: at most this many requests per email per minute.
	MinuteWindowLimit = 1
	// HourWindowLimit: at most this many requests per email per hour.
	HourWindowLimit = 5
)
