package test

import (
	"context"
	"slices"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"
	"github.com/polkiloo/smsrent/internal/domain/model"
)

// OrderRepositoryStub is an in-memory order store mirroring the SQL semantics:
// inserts are keyed on id, closed_at is stamped once and lists follow the
// partition ordering. Err fields force failures of the matching call.
type OrderRepositoryStub struct {
	InsertErr  error
	UpdateErr  error
	GetErr     error
	ListErr    error
	Now        func() time.Time
	InsertHits int
	UpdateHits int

	mu     sync.Mutex
	orders map[string]model.Order
	tick   time.Time
}

// NewOrderRepositoryStub constructs an empty repository with a ticking clock.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{orders: make(map[string]model.Order)}
}

func (s *OrderRepositoryStub) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	if s.tick.IsZero() {
		s.tick = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	s.tick = s.tick.Add(time.Second)
	return s.tick
}

// Insert stores the order unless the id already exists.
func (s *OrderRepositoryStub) Insert(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InsertHits++
	if s.InsertErr != nil {
		return nil, false, s.InsertErr
	}
	if s.orders == nil {
		s.orders = make(map[string]model.Order)
	}
	if existing, ok := s.orders[order.ID]; ok {
		return &existing, false, nil
	}
	stored := *order
	ts := s.now()
	stored.CreatedAt, stored.UpdatedAt = ts, ts
	stored.ClosedAt = nil
	s.orders[stored.ID] = stored
	return &stored, true, nil
}

// Update merges fields into a stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateHits++
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.SMS != nil {
		order.SMS = *update.SMS
	}
	ts := s.now()
	order.UpdatedAt = ts
	if order.ClosedAt == nil && order.Status.Closes() {
		closed := ts
		order.ClosedAt = &closed
	}
	s.orders[id] = order
	return &order, nil
}

// GetByID returns a stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &order, nil
}

// ListActive returns WAITING and COMPLETED orders, newest first.
func (s *OrderRepositoryStub) ListActive(ctx context.Context) ([]model.Order, error) {
	orders, err := s.filter(func(o model.Order) bool { return o.Status.Active() })
	if err != nil {
		return nil, err
	}
	slices.SortFunc(orders, func(a, b model.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return orders, nil
}

// ListHistory returns the remaining orders, most recently updated first.
func (s *OrderRepositoryStub) ListHistory(ctx context.Context) ([]model.Order, error) {
	orders, err := s.filter(func(o model.Order) bool { return !o.Status.Active() })
	if err != nil {
		return nil, err
	}
	slices.SortFunc(orders, func(a, b model.Order) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders, nil
}

// Len returns the number of stored orders.
func (s *OrderRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *OrderRepositoryStub) filter(keep func(model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	orders := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
