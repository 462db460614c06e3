package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/sweetcrumb/bakeshop/internal/domain/errors"
	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	"github.com/sweetcrumb/bakeshop/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// Pool is the subset of pgxpool.Pool the storage layer relies on.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	storage.logger.Info("database schema initialized")

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            customer_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            items JSONB NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

// Create inserts the user relying on the unique email index as the sole
// duplicate check, so concurrent registrations cannot race past it.
func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)
                   RETURNING id, role, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&u.ID, &u.Role, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByID deliberately leaves the password hash out of the result shape.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	const query = `UPDATE users SET role=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, customerName, phone string, items []model.LineItem, notes string) (*model.Order, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	const query = `INSERT INTO orders (customer_name, phone, items, notes, status)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	var order model.Order
	err = r.storage.pool.QueryRow(ctx, query, customerName, phone, payload, notes, model.OrderStatusPending).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.CustomerName = customerName
	order.Phone = phone
	order.Items = items
	order.Notes = notes
	order.Status = model.OrderStatusPending
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, customer_name, phone, items, notes, status, created_at
                   FROM orders ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			o       model.Order
			payload []byte
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Phone, &payload, &o.Notes, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items for order %d: %w", o.ID, err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
