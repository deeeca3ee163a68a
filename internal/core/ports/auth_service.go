package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type AuthService interface {
	// Register creates a new account with the default user role and returns
	// a signed session token alongside the created profile.
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed session token. Unknown
	// username and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// IssueToken produces a signed bearer token for the given identity.
	IssueToken(userID string, username string, role domain.Role) (string, error)
}
