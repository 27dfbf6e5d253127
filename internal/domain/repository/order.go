package repository

import (
	"context"

	"github.com/polkiloo/smsrent/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Insert stores a new order keyed by id. Replaying an existing id returns
	// the stored record and false.
	Insert(ctx context.Context, order *model.Order) (*model.Order, bool, error)
	// Update merges fields, stamps updated_at and, on first entry into a
	// closing status, closed_at.
	Update(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListActive(ctx context.Context) ([]model.Order, error)
	ListHistory(ctx context.Context) ([]model.Order, error)
}
