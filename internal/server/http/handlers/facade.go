package handlers

import (
	"context"

	"github.com/polkiloo/smsrent/internal/domain/model"
)

// CatalogFacade exposes the static service and country tables.
type CatalogFacade interface {
	Services() map[string]string
	Countries() map[string]string
}

// PriceFacade lists provider prices.
type PriceFacade interface {
	Prices(ctx context.Context, service, country string) ([]float64, error)
}

// BalanceFacade reads the provider balance.
type BalanceFacade interface {
	Balance(ctx context.Context) (string, error)
}

// OrderFacade encapsulates rental lifecycle operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, service, country string, maxPrice *float64) (*model.Order, error)
	OrderStatus(ctx context.Context, id string) (status, sms string, err error)
	FinishOrder(ctx context.Context, id string) error
	CancelOrder(ctx context.Context, id string) error
	RequestAgain(ctx context.Context, id string) (string, error)
	RemoveOrder(ctx context.Context, id string) error
	TimeoutOrder(ctx context.Context, id string) error
	ActiveOrders(ctx context.Context) ([]model.Order, error)
	OrderHistory(ctx context.Context) ([]model.Order, error)
}

// ActivationFacade aggregates the full set of operations used across handlers.
type ActivationFacade interface {
	CatalogFacade
	PriceFacade
	BalanceFacade
	OrderFacade
}

// HealthChecker reports readiness of backing storage.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
