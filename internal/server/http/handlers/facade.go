package handlers

import (
	"context"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	pkgAuth "github.com/sweetcrumb/bakeshop/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) (int64, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
	UpdateUserRole(ctx context.Context, id int64, role model.Role) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, customerName, phone string, items []model.LineItem, notes string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// CatalogFacade exposes the product list.
type CatalogFacade interface {
	Products() []model.Product
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	OrderFacade
	CatalogFacade
}
