package test

import (
	"context"
	"time"

	domainErrors "github.com/sweetcrumb/bakeshop/internal/domain/errors"
	"github.com/sweetcrumb/bakeshop/internal/domain/model"
)

// RoleUpdateCall records an UpdateRole invocation.
type RoleUpdateCall struct {
	ID   int64
	Role model.Role
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail     map[string]*model.User
	ByID        map[int64]*model.User
	Next        int64
	Err         error
	RoleUpdates []RoleUpdateCall
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           s.Next,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleCustomer,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier with the password hash stripped,
// matching the repository contract.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		clone := *user
		clone.PasswordHash = ""
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateRole records the invocation and applies it to the stored user.
func (s *UserRepositoryStub) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Role = role
	s.RoleUpdates = append(s.RoleUpdates, RoleUpdateCall{ID: id, Role: role})
	return nil
}

// OrderStatusCall records an UpdateStatus invocation.
type OrderStatusCall struct {
	ID     int64
	Status model.OrderStatus
}

// OrderRepositoryStub behaves as an in-memory order store with overridable behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, string, string, []model.LineItem, string) (*model.Order, error)
	ListFn         func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error

	Orders      []model.Order
	Next        int64
	UpdateCalls []OrderStatusCall
	Err         error
}

// Create stores a pending order and returns it, newest first in Orders.
func (s *OrderRepositoryStub) Create(ctx context.Context, customerName, phone string, items []model.LineItem, notes string) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerName, phone, items, notes)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order := model.Order{
		ID:           s.Next,
		CustomerName: customerName,
		Phone:        phone,
		Items:        items,
		Notes:        notes,
		Status:       model.OrderStatusPending,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Orders = append([]model.Order{order}, s.Orders...)
	return &order, nil
}

// List returns stored orders or delegates to the override.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Orders, nil
}

// UpdateStatus mutates the stored order and records the invocation.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			s.UpdateCalls = append(s.UpdateCalls, OrderStatusCall{ID: id, Status: status})
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
