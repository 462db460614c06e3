package test

import (
	"context"
	"time"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	pkgAuth "github.com/sweetcrumb/bakeshop/internal/pkg/auth"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(ctx context.Context, name, email, password, confirm string) (int64, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*model.User, string, error)
	ParseFn        func(token string) (*pkgAuth.Claims, error)
	UpdateRoleFn   func(ctx context.Context, id int64, role model.Role) error
}

// Register delegates to the override or reports a fresh user id.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password, confirm string) (int64, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password, confirm)
	}
	return 1, nil
}

// Authenticate returns a configured or default user/token pair.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Name: "Stub", Email: email, Role: model.RoleCustomer}, "token", nil
}

// ParseToken verifies tokens via override or accepts everything.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{UserID: 1, Email: "stub@example.com", Role: model.RoleCustomer}, nil
}

// UpdateUserRole records nothing by default.
func (s AuthFacadeStub) UpdateUserRole(ctx context.Context, id int64, role model.Role) error {
	if s.UpdateRoleFn != nil {
		return s.UpdateRoleFn(ctx, id, role)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(ctx context.Context, name, phone string, items []model.LineItem, notes string) (*model.Order, error)
	OrdersFn       func(ctx context.Context) ([]model.Order, error)
	UpdateStatusFn func(ctx context.Context, id int64, status model.OrderStatus) error
}

// PlaceOrder delegates to provided function or returns a pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, name, phone string, items []model.LineItem, notes string) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, name, phone, items, notes)
	}
	return &model.Order{
		ID:           1,
		CustomerName: name,
		Phone:        phone,
		Items:        items,
		Notes:        notes,
		Status:       model.OrderStatusPending,
		CreatedAt:    time.Unix(0, 0),
	}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, CustomerName: "Stub", Status: model.OrderStatusPending}}, nil
}

// UpdateOrderStatus executes configured handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

// CatalogFacadeStub serves a fixed product list.
type CatalogFacadeStub struct {
	ProductsFn func() []model.Product
}

// Products returns the configured or default catalog.
func (s CatalogFacadeStub) Products() []model.Product {
	if s.ProductsFn != nil {
		return s.ProductsFn()
	}
	return []model.Product{
		{ID: 1, Name: "Chocolate Chip", Price: 25},
		{ID: 2, Name: "Red Velvet", Price: 30},
	}
}

// ShopFacadeStub aggregates the full facade surface used across handlers.
type ShopFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
}
