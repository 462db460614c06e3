package app

import (
	"context"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	pkgAuth "github.com/sweetcrumb/bakeshop/internal/pkg/auth"
	"github.com/sweetcrumb/bakeshop/internal/usecase"
)

// ShopFacade is the single entry point the HTTP layer talks to.
type ShopFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	catalog *usecase.CatalogUseCase
}

func NewShopFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase) *ShopFacade {
	return &ShopFacade{auth: auth, orders: orders, catalog: catalog}
}

func (f *ShopFacade) Register(ctx context.Context, name, email, password, confirmPassword string) (int64, error) {
	return f.auth.Register(ctx, name, email, password, confirmPassword)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) UpdateUserRole(ctx context.Context, id int64, role model.Role) error {
	return f.auth.UpdateRole(ctx, id, role)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, customerName, phone string, items []model.LineItem, notes string) (*model.Order, error) {
	return f.orders.Place(ctx, customerName, phone, items, notes)
}

func (f *ShopFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *ShopFacade) Products() []model.Product {
	return f.catalog.Products()
}
