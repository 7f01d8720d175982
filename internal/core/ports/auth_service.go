package ports

import (
	"context"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// usernames and wrong passwords fail with the same error so callers
	// cannot probe which half was wrong.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenService issues and validates the bearer tokens that bind a request
// to a user identity. It is stateless: everything it needs is the signing
// secret it was built with.
type TokenService interface {
	Issue(userID int64) (string, error)
	// Validate returns the user ID encoded in the token, or one of the
	// domain token errors (ErrTokenMalformed, ErrTokenExpired,
	// ErrTokenSignatureInvalid). It never panics on attacker-supplied input.
	Validate(token string) (int64, error)
}
