package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"
	"github.com/polkiloo/smsrent/internal/domain/model"
	"github.com/polkiloo/smsrent/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

const orderColumns = `id, number, service, service_name, country, country_name, status, sms, price, created_at, updated_at, closed_at`

// Storage is the PostgreSQL backed order store.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New connects to dsn and initialises the schema.
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

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            number TEXT NOT NULL,
            service TEXT NOT NULL,
            service_name TEXT NOT NULL DEFAULT '',
            country TEXT NOT NULL,
            country_name TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            sms TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            closed_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_updated ON orders(updated_at DESC, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Number, &o.Service, &o.ServiceName, &o.Country, &o.CountryName,
		&o.Status, &o.SMS, &o.Price, &o.CreatedAt, &o.UpdatedAt, &o.ClosedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func statusNames(statuses []model.OrderStatus) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

// --- OrderRepository implementation ---

func (r *orderRepository) Insert(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	const query = `INSERT INTO orders (id, number, service, service_name, country, country_name, status, sms, price)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   ON CONFLICT (id) DO NOTHING
                   RETURNING ` + orderColumns
	stored, err := scanOrder(r.storage.pool.QueryRow(ctx, query,
		order.ID, order.Number, order.Service, order.ServiceName, order.Country, order.CountryName,
		string(order.Status), order.SMS, order.Price))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.storage.logger.Debug("order already stored", slog.String("order_id", order.ID))
			existing, err := r.GetByID(ctx, order.ID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return stored, true, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, error) {
	const query = `UPDATE orders SET
                       status = COALESCE($2, status),
                       sms = COALESCE($3, sms),
                       updated_at = NOW(),
                       closed_at = CASE
                           WHEN closed_at IS NULL AND COALESCE($2, status) = ANY($4) THEN NOW()
                           ELSE closed_at
                       END
                   WHERE id=$1
                   RETURNING ` + orderColumns
	var status *string
	if update.Status != nil {
		s := string(*update.Status)
		status = &s
	}
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, status, update.SMS, statusNames(model.ClosingStatuses)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListActive(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE status = ANY($1)
                   ORDER BY created_at DESC`
	return r.list(ctx, query, statusNames(model.ActiveStatuses))
}

func (r *orderRepository) ListHistory(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE NOT (status = ANY($1))
                   ORDER BY updated_at DESC, created_at DESC`
	return r.list(ctx, query, statusNames(model.ActiveStatuses))
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
