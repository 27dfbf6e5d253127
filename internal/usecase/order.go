package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"
	"github.com/polkiloo/smsrent/internal/domain/model"
	"github.com/polkiloo/smsrent/internal/domain/repository"
)

// StatusUnknown is reported when the provider could not be reached.
const StatusUnknown = "UNKNOWN"

// CreateOrderInput describes a rental request.
type CreateOrderInput struct {
	Service  string
	Country  string
	MaxPrice *float64
}

// StatusResult is the outcome of a status poll. SMS is set only once a
// code has arrived.
type StatusResult struct {
	Status string
	SMS    string
}

// OrderUseCase drives the rental lifecycle from provider replies.
type OrderUseCase struct {
	orders  repository.OrderRepository
	gateway Gateway
	catalog Catalog
	logger  *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, gateway Gateway, catalog Catalog, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, gateway: gateway, catalog: catalog, logger: logger}
}

// Create rents a number and records a WAITING order. Nothing is stored when
// the provider does not issue a number.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	sel, err := ValidateSelection(u.catalog, in.Service, in.Country)
	if err != nil {
		return nil, err
	}

	reply := u.gateway.RequestNumber(ctx, sel.Service, sel.Country, in.MaxPrice)
	issued, ok := reply.(model.NumberIssued)
	if !ok {
		return nil, providerFailure(reply)
	}

	prices, err := u.gateway.Prices(ctx, sel.Service, sel.Country)
	if err != nil {
		u.logger.Warn("price lookup failed after number was issued",
			slog.String("order_id", issued.ID),
			slog.String("error", err.Error()))
		prices = nil
	}

	order := &model.Order{
		ID:          issued.ID,
		Number:      issued.Number,
		Service:     sel.Service,
		ServiceName: sel.ServiceName,
		Country:     sel.Country,
		CountryName: sel.CountryName,
		Status:      model.OrderStatusWaiting,
		Price:       ResolvePrice(prices, in.MaxPrice),
	}
	stored, created, err := u.orders.Insert(ctx, order)
	if err != nil {
		return nil, storeError("insert", err)
	}
	if !created {
		u.logger.Info("order already recorded", slog.String("order_id", stored.ID))
	}
	return stored, nil
}

// PollStatus asks the provider for the activation state. A received code
// completes the order and is reported even when the order is not stored; any
// other reply is returned verbatim without mutation.
func (u *OrderUseCase) PollStatus(ctx context.Context, id string) (StatusResult, error) {
	reply := u.gateway.Status(ctx, id)
	switch r := reply.(type) {
	case model.CodeReceived:
		status := model.OrderStatusCompleted
		code := r.Code
		_, err := u.orders.Update(ctx, id, model.OrderUpdate{Status: &status, SMS: &code})
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			u.logger.Warn("code received for unknown order", slog.String("order_id", id))
		case err != nil:
			return StatusResult{}, storeError("update", err)
		}
		return StatusResult{Status: string(status), SMS: code}, nil
	case model.TransportFailure:
		return StatusResult{Status: StatusUnknown}, nil
	}
	if reply.Text() == "" {
		return StatusResult{Status: StatusUnknown}, nil
	}
	return StatusResult{Status: reply.Text()}, nil
}

// Finish confirms a received code with the provider.
func (u *OrderUseCase) Finish(ctx context.Context, id string) error {
	return u.acknowledge(ctx, id, model.RequestFinish, model.AckActivation, model.OrderStatusFinished)
}

// Cancel releases the number back to the provider.
func (u *OrderUseCase) Cancel(ctx context.Context, id string) error {
	return u.acknowledge(ctx, id, model.RequestCancel, model.AckCancel, model.OrderStatusCanceled)
}

// RequestAgain asks the provider for another code and returns the
// normalised acknowledgement.
func (u *OrderUseCase) RequestAgain(ctx context.Context, id string) (string, error) {
	reply := u.gateway.SetStatus(ctx, id, model.RequestRetry)
	ack, ok := reply.(model.Ack)
	if !ok || (ack.Kind != model.AckReady && ack.Kind != model.AckRetryGet) {
		err := providerFailure(reply)
		var perr *domainErrors.ProviderError
		if errors.As(err, &perr) {
			perr.Message = strings.ToUpper(strings.TrimSpace(perr.Message))
		}
		return "", err
	}
	if err := u.setStatus(ctx, id, model.OrderStatusWaiting); err != nil {
		return "", err
	}
	return string(ack.Kind), nil
}

// Remove soft-deletes an order without contacting the provider.
func (u *OrderUseCase) Remove(ctx context.Context, id string) error {
	return u.setStatus(ctx, id, model.OrderStatusDeleted)
}

// Timeout marks an order as expired without contacting the provider.
func (u *OrderUseCase) Timeout(ctx context.Context, id string) error {
	return u.setStatus(ctx, id, model.OrderStatusTimeout)
}

// ListActive returns WAITING and COMPLETED orders.
func (u *OrderUseCase) ListActive(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListActive(ctx)
	if err != nil {
		return nil, storeError("list active", err)
	}
	return orders, nil
}

// ListHistory returns every order outside the active partition.
func (u *OrderUseCase) ListHistory(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListHistory(ctx)
	if err != nil {
		return nil, storeError("list history", err)
	}
	return orders, nil
}

func (u *OrderUseCase) acknowledge(ctx context.Context, id string, req model.ActivationRequest, want model.AckKind, status model.OrderStatus) error {
	reply := u.gateway.SetStatus(ctx, id, req)
	if ack, ok := reply.(model.Ack); !ok || ack.Kind != want {
		return providerFailure(reply)
	}
	return u.setStatus(ctx, id, status)
}

func (u *OrderUseCase) setStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if _, err := u.orders.Update(ctx, id, model.StatusUpdate(status)); err != nil {
		return storeError("update", err)
	}
	return nil
}

// storeError keeps ErrNotFound matchable and tags everything else as a
// persistence failure.
func storeError(op string, err error) error {
	var serr *domainErrors.StoreError
	if errors.Is(err, domainErrors.ErrNotFound) || errors.As(err, &serr) {
		return err
	}
	return &domainErrors.StoreError{Op: op, Err: err}
}
