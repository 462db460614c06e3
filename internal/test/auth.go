package test

import (
	"errors"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	pkgAuth "github.com/sweetcrumb/bakeshop/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(*model.User) (string, error)
	ParseFn func(string) (*pkgAuth.Claims, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(user *model.User) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(user)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{UserID: 1, Email: "stub@example.com", Role: model.RoleCustomer}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub satisfies the middleware token parser contract.
type TokenParserStub struct {
	Claims *pkgAuth.Claims
	Err    error
}

// ParseToken returns configured claims or error.
func (s TokenParserStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Claims != nil {
		return s.Claims, nil
	}
	return &pkgAuth.Claims{UserID: 1, Email: "stub@example.com", Role: model.RoleCustomer}, nil
}
