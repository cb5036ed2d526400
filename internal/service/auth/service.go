package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/auth"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/user"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/verification"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/email"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/jwt"
	"github.com/bizgrid/bizgrid-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	verification.CodeRepository
	jwt.Service
	postgresql.JWTRepository
	emailService email.EmailService
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	codeRepository verification.CodeRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	emailService email.EmailService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		CodeRepository: codeRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
		emailService:   emailService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// SendVerificationCode implements auth.AuthService.
func (a *AuthServiceImpl) SendVerificationCode(ctx context.Context, req auth.SendCodeRequest) error {
	now := time.Now()

	// 1 request per minute per email
	minuteCount, err := a.CodeRepository.CountSince(ctx, req.Email, now.Add(-time.Minute))
	if err != nil {
		return fmt.Errorf("failed to count recent verification codes: %w", err)
	}
	if minuteCount >= verification.MinuteWindowLimit {
		return fmt.Errorf("%w: try again in a minute", verification.ErrTooManyRequests)
	}

	// 5 requests per hour per email
	hourCount, err := a.CodeRepository.CountSince(ctx, req.Email, now.Add(-time.Hour))
	if err != nil {
		return fmt.Errorf("failed to count recent verification codes: %w", err)
	}
	if hourCount >= verification.HourWindowLimit {
		return fmt.Errorf("%w: try again in an hour", verification.ErrTooManyRequests)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	expiresAt := now.Add(verification.TTL)

	// Purge prior codes and insert the new one together, so at most one live
	// code exists per email.
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.CodeRepository.DeleteByEmail(txCtx, req.Email); err != nil {
			return fmt.Errorf("failed to delete prior verification codes: %w", err)
		}
		if _, err := a.CodeRepository.Create(txCtx, verification.EmailVerificationCode{
			Email:     req.Email,
			Code:      code,
			ExpiresAt: expiresAt,
		}); err != nil {
			return fmt.Errorf("failed to store verification code: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Delivery failure surfaces to the caller; the stored code stays valid.
	if err := a.emailService.SendVerificationCode(req.Email, code, expiresAt); err != nil {
		return fmt.Errorf("%w: %v", auth.ErrEmailDeliveryFailed, err)
	}

	return nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	codeRecord, err := a.CodeRepository.GetValid(ctx, req.Email, req.Code, time.Now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return verification.ErrCodeInvalidOrExpired
		}
		return fmt.Errorf("failed to look up verification code: %w", err)
	}

	exists, err := a.UserRepository.ExistsByUsername(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return auth.ErrEmailAlreadyExists
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Create the user first and only then consume the code: a failed user
	// insert leaves the code live so the caller can retry.
	newEmail := req.Email
	if _, err := a.UserRepository.Create(ctx, user.User{
		Username:     req.Email,
		Email:        &newEmail,
		PasswordHash: hashedPassword,
		Source:       user.SourceEmail,
	}); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.CodeRepository.MarkUsed(ctx, codeRecord.ID); err != nil {
		return fmt.Errorf("failed to mark verification code used: %w", err)
	}

	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// LoginWithGoogle implements auth.AuthService. Provisioning is idempotent: the
// user is created on first sign-in only.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, googleEmail)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
		}

		// First sign-in: the placeholder password is random and never
		// communicated, so the account is only reachable through OAuth.
		placeholder, hashErr := a.hashPassword(uuid.NewString())
		if hashErr != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to hash placeholder password: %w", hashErr)
		}
		emailAddr := googleEmail
		userData, err = a.UserRepository.Create(ctx, user.User{
			Username:     googleEmail,
			Email:        &emailAddr,
			PasswordHash: placeholder,
			Source:       user.SourceGoogle,
		})
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.CurrentCompanyID)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry
	userID, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Get user
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	// 5. Generate new access token
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.CurrentCompanyID)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return auth.ErrInvalidToken
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}
