package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/sweetcrumb/bakeshop/internal/domain/errors"
	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	"github.com/sweetcrumb/bakeshop/internal/domain/repository"
)

// OrderUseCase encapsulates the order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place validates and stores a new order. Every order starts out pending.
func (u *OrderUseCase) Place(ctx context.Context, customerName, phone string, items []model.LineItem, notes string) (*model.Order, error) {
	customerName = strings.TrimSpace(customerName)
	phone = strings.TrimSpace(phone)
	if customerName == "" || phone == "" || len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidLineItem
		}
	}

	return u.orders.Create(ctx, customerName, phone, items, notes)
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// UpdateStatus replaces the order status. Any valid status may follow any
// other; there is no transition graph.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return u.orders.UpdateStatus(ctx, id, status)
}
