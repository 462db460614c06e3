package repository

import (
	"context"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
)

// UserRepository describes persistence operations for users.
// GetByID never exposes the stored password hash.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateRole(ctx context.Context, id int64, role model.Role) error
}
