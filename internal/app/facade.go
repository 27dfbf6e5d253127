package app

import (
	"context"

	"github.com/polkiloo/smsrent/internal/catalog"
	"github.com/polkiloo/smsrent/internal/domain/model"
	"github.com/polkiloo/smsrent/internal/usecase"
)

// ActivationFacade exposes the rental use cases to the HTTP layer.
type ActivationFacade struct {
	catalog *catalog.Catalog
	orders  *usecase.OrderUseCase
	prices  *usecase.PriceUseCase
	balance *usecase.BalanceUseCase
}

func NewActivationFacade(cat *catalog.Catalog, orders *usecase.OrderUseCase, prices *usecase.PriceUseCase, balance *usecase.BalanceUseCase) *ActivationFacade {
	return &ActivationFacade{catalog: cat, orders: orders, prices: prices, balance: balance}
}

func (f *ActivationFacade) Services() map[string]string {
	return f.catalog.Services()
}

func (f *ActivationFacade) Countries() map[string]string {
	return f.catalog.Countries()
}

func (f *ActivationFacade) Prices(ctx context.Context, service, country string) ([]float64, error) {
	return f.prices.List(ctx, service, country)
}

func (f *ActivationFacade) Balance(ctx context.Context) (string, error) {
	return f.balance.Balance(ctx)
}

func (f *ActivationFacade) CreateOrder(ctx context.Context, service, country string, maxPrice *float64) (*model.Order, error) {
	return f.orders.Create(ctx, usecase.CreateOrderInput{Service: service, Country: country, MaxPrice: maxPrice})
}

func (f *ActivationFacade) OrderStatus(ctx context.Context, id string) (string, string, error) {
	res, err := f.orders.PollStatus(ctx, id)
	if err != nil {
		return "", "", err
	}
	return res.Status, res.SMS, nil
}

func (f *ActivationFacade) FinishOrder(ctx context.Context, id string) error {
	return f.orders.Finish(ctx, id)
}

func (f *ActivationFacade) CancelOrder(ctx context.Context, id string) error {
	return f.orders.Cancel(ctx, id)
}

func (f *ActivationFacade) RequestAgain(ctx context.Context, id string) (string, error) {
	return f.orders.RequestAgain(ctx, id)
}

func (f *ActivationFacade) RemoveOrder(ctx context.Context, id string) error {
	return f.orders.Remove(ctx, id)
}

func (f *ActivationFacade) TimeoutOrder(ctx context.Context, id string) error {
	return f.orders.Timeout(ctx, id)
}

func (f *ActivationFacade) ActiveOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListActive(ctx)
}

func (f *ActivationFacade) OrderHistory(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListHistory(ctx)
}
