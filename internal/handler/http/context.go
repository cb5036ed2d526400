package http

import (
	"net/http"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/auth"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// userIDFromRequest extracts the authenticated user id from the verified
// token claims. The verifier middleware guarantees a token is present on
// protected routes.
func userIDFromRequest(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	userID, ok := jwt.UserIDFromClaims(claims)
	if !ok {
		return 0, auth.ErrInvalidToken
	}

	return userID, nil
}
