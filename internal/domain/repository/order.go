package repository

import (
	"context"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, customerName, phone string, items []model.LineItem, notes string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}
