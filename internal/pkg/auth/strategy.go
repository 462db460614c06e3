package auth

import (
	"errors"
	"time"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
)

// ErrInvalidToken covers malformed, tampered and expired tokens alike.
var ErrInvalidToken = errors.New("invalid auth token")

// Claims is the verified token payload attached to authenticated requests.
type Claims struct {
	UserID int64
	Email  string
	Role   model.Role
}

// Strategy issues and verifies bearer tokens for authenticated users.
type Strategy interface {
	IssueToken(user *model.User) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
