package jwt

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, "1h", "24h")

	companyID := int64(42)
	token, expiresAt, err := jwtService.GenerateAccessToken(7, "user@example.com", &companyID)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(jwtService.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "user@example.com", claims["username"])

	userID, ok := UserIDFromClaims(claims)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
}

func TestGenerateAccessToken_NoCurrentCompany(t *testing.T) {
	jwtService := NewJWTService(testSecret, "1h", "24h")

	token, _, err := jwtService.GenerateAccessToken(7, "user@example.com", nil)
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(jwtService.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	_, present := claims["current_company_id"]
	assert.False(t, present)
}

func TestGenerateRefreshToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, "1h", "24h")

	token, expiresAt, err := jwtService.GenerateRefreshToken(7)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Add(23*time.Hour).Unix())

	decoded, err := jwtauth.VerifyToken(jwtService.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	jwtService := NewJWTService(testSecret, "1h", "24h")
	otherService := NewJWTService("a-different-secret", "1h", "24h")

	token, _, err := jwtService.GenerateAccessToken(7, "user@example.com", nil)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(otherService.JWTAuth(), token)
	assert.Error(t, err)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	jwtService := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := jwtService.GenerateAccessToken(7, "user@example.com", nil)
	assert.Error(t, err)
}

func TestUserIDFromClaims(t *testing.T) {
	cases := []struct {
		name   string
		claims map[string]interface{}
		want   int64
		ok     bool
	}{
		{"float64", map[string]interface{}{"user_id": float64(7)}, 7, true},
		{"int64", map[string]interface{}{"user_id": int64(7)}, 7, true},
		{"json.Number", map[string]interface{}{"user_id": json.Number("7")}, 7, true},
		{"string", map[string]interface{}{"user_id": "7"}, 7, true},
		{"missing", map[string]interface{}{}, 0, false},
		{"garbage", map[string]interface{}{"user_id": true}, 0, false},
		{"bad string", map[string]interface{}{"user_id": "seven"}, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := UserIDFromClaims(c.claims)
			assert.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.want, got)
			}
		})
	}
}

func TestRefreshTokenCookie(t *testing.T) {
	jwtService := NewJWTService(testSecret, "1h", "24h")

	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	cookie := jwtService.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
