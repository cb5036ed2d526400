package verification

import "errors"

var (
	ErrCodeInvalidOrExpired = errors.New("verification code invalid or expired")
	ErrTooManyRequests      = errors.New("too many verification code requests")
)
