package auth

import "context"

type AuthService interface {
	// SendVerificationCode rate-limits, purges prior codes for the email,
	// stores a fresh 6-digit code and dispatches it by email.
	SendVerificationCode(ctx context.Context, req SendCodeRequest) error
	// Register consumes a live verification code and creates the user.
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	// LoginWithGoogle provisions the user on first sign-in (idempotent) and
	// issues tokens.
	LoginWithGoogle(ctx context.Context, googleEmail string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
