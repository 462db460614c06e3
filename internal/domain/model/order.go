package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus maps raw input onto the closed status set.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(raw), true
	}
	return "", false
}

// LineItem is a single position inside an order.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order describes a customer purchase request. Items are persisted as a
// serialized blob, not a relational join.
type Order struct {
	ID           int64
	CustomerName string
	Phone        string
	Items        []LineItem
	Notes        string
	Status       OrderStatus
	CreatedAt    time.Time
}
