package test

import (
	"context"
	"time"

	"github.com/polkiloo/smsrent/internal/domain/model"
)

// CatalogFacadeStub returns fixed catalog tables.
type CatalogFacadeStub struct {
	ServicesVal  map[string]string
	CountriesVal map[string]string
}

// Services returns configured services or a single WhatsApp entry.
func (s CatalogFacadeStub) Services() map[string]string {
	if s.ServicesVal != nil {
		return s.ServicesVal
	}
	return map[string]string{"wa": "WhatsApp"}
}

// Countries returns configured countries or a single Indonesia entry.
func (s CatalogFacadeStub) Countries() map[string]string {
	if s.CountriesVal != nil {
		return s.CountriesVal
	}
	return map[string]string{"6": "Indonesia"}
}

// PriceFacadeStub simulates price listing.
type PriceFacadeStub struct {
	PricesFn func(context.Context, string, string) ([]float64, error)
}

// Prices delegates to PricesFn or returns a default list.
func (s PriceFacadeStub) Prices(ctx context.Context, service, country string) ([]float64, error) {
	if s.PricesFn != nil {
		return s.PricesFn(ctx, service, country)
	}
	return []float64{1200, 1500}, nil
}

// BalanceFacadeStub simulates balance lookups.
type BalanceFacadeStub struct {
	BalanceFn func(context.Context) (string, error)
}

// Balance delegates to BalanceFn or returns a default value.
func (s BalanceFacadeStub) Balance(ctx context.Context) (string, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx)
	}
	return "100.50", nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn  func(context.Context, string, string, *float64) (*model.Order, error)
	StatusFn  func(context.Context, string) (string, string, error)
	ActionFn  func(context.Context, string) error
	RetryFn   func(context.Context, string) (string, error)
	ListFn    func(context.Context) ([]model.Order, error)
	HistoryFn func(context.Context) ([]model.Order, error)
}

// CreateOrder delegates to CreateFn or returns a WAITING order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, service, country string, maxPrice *float64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, service, country, maxPrice)
	}
	now := time.Unix(0, 0).UTC()
	return &model.Order{ID: "1", Number: "100", Service: service, Country: country, Status: model.OrderStatusWaiting, CreatedAt: now, UpdatedAt: now}, nil
}

// OrderStatus delegates to StatusFn or reports a waiting order.
func (s OrderFacadeStub) OrderStatus(ctx context.Context, id string) (string, string, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, id)
	}
	return "STATUS_WAIT_CODE", "", nil
}

// FinishOrder delegates to ActionFn.
func (s OrderFacadeStub) FinishOrder(ctx context.Context, id string) error { return s.action(ctx, id) }

// CancelOrder delegates to ActionFn.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, id string) error { return s.action(ctx, id) }

// RemoveOrder delegates to ActionFn.
func (s OrderFacadeStub) RemoveOrder(ctx context.Context, id string) error { return s.action(ctx, id) }

// TimeoutOrder delegates to ActionFn.
func (s OrderFacadeStub) TimeoutOrder(ctx context.Context, id string) error { return s.action(ctx, id) }

// RequestAgain delegates to RetryFn or acknowledges readiness.
func (s OrderFacadeStub) RequestAgain(ctx context.Context, id string) (string, error) {
	if s.RetryFn != nil {
		return s.RetryFn(ctx, id)
	}
	return "ACCESS_READY", nil
}

// ActiveOrders delegates to ListFn.
func (s OrderFacadeStub) ActiveOrders(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// OrderHistory delegates to HistoryFn.
func (s OrderFacadeStub) OrderHistory(ctx context.Context) ([]model.Order, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx)
	}
	return nil, nil
}

func (s OrderFacadeStub) action(ctx context.Context, id string) error {
	if s.ActionFn != nil {
		return s.ActionFn(ctx, id)
	}
	return nil
}

// ActivationFacadeStub aggregates facade dependencies for HTTP layer tests.
type ActivationFacadeStub struct {
	CatalogFacadeStub
	PriceFacadeStub
	BalanceFacadeStub
	OrderFacadeStub
}

// HealthCheckerStub returns Err from HealthCheck.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
