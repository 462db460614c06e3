package dto

import (
	"time"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
)

// CreateOrderRequest describes an incoming cookie order.
type CreateOrderRequest struct {
	Name  string           `json:"name"`
	Phone string           `json:"phone"`
	Items []model.LineItem `json:"items"`
	Notes string           `json:"notes"`
}

// CreateOrderResponse confirms order placement.
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// OrderResponse is a single order as returned to the admin view.
type OrderResponse struct {
	ID           int64            `json:"id"`
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	Items        []model.LineItem `json:"items"`
	Notes        string           `json:"notes"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
}

// UpdateStatusRequest carries the target order status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse acknowledges a mutation.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderFromModel maps a domain order to its transport form.
func OrderFromModel(order model.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Items:        order.Items,
		Notes:        order.Notes,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
}
