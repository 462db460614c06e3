package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/sweetcrumb/bakeshop/internal/domain/errors"
	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	"github.com/sweetcrumb/bakeshop/internal/domain/repository"
	pkgAuth "github.com/sweetcrumb/bakeshop/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns its identifier. No token is
// issued at registration; the client logs in afterwards.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password, confirmPassword string) (int64, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return 0, domainErrors.ErrMissingFields
	}
	if password != confirmPassword {
		return 0, domainErrors.ErrPasswordMismatch
	}
	// Length is counted in characters, not bytes.
	if utf8.RuneCountInString(password) < minPasswordLength {
		return 0, domainErrors.ErrPasswordTooShort
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return 0, err
	}

	return usr.ID, nil
}

// Authenticate validates credentials and returns the user with a fresh token.
// Unknown email and wrong password collapse into the same error so the
// response never reveals which accounts exist.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrMissingFields
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken verifies the token signature and expiry and returns its claims.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier, password hash excluded.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateRole assigns a role to the user. The role is already validated at
// the HTTP boundary.
func (u *AuthUseCase) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	return u.users.UpdateRole(ctx, id, role)
}
