package smshub

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"
	"github.com/polkiloo/smsrent/internal/domain/model"
)

// Provider action names.
const (
	ActionGetNumber  = "getNumber"
	ActionGetStatus  = "getStatus"
	ActionSetStatus  = "setStatus"
	ActionGetBalance = "getBalance"
	ActionGetPrices  = "getPrices"
)

// setStatus codes understood by the provider.
var activationCodes = map[model.ActivationRequest]string{
	model.RequestRetry:  "3",
	model.RequestFinish: "6",
	model.RequestCancel: "8",
}

// Provider exposes typed provider actions on top of a Client.
type Provider struct {
	client   Client
	currency string
}

// NewProvider wraps client; currency is passed to getPrices.
func NewProvider(client Client, currency string) *Provider {
	return &Provider{client: client, currency: currency}
}

// RequestNumber rents a number for service in country, optionally capped by maxPrice.
func (p *Provider) RequestNumber(ctx context.Context, service, country string, maxPrice *float64) model.Reply {
	params := url.Values{"service": {service}, "country": {country}}
	if maxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*maxPrice, 'f', -1, 64))
	}
	return ParseReply(p.client.Call(ctx, ActionGetNumber, params))
}

// Status asks for the activation state of an order.
func (p *Provider) Status(ctx context.Context, id string) model.Reply {
	return ParseReply(p.client.Call(ctx, ActionGetStatus, url.Values{"id": {id}}))
}

// SetStatus requests an activation transition.
func (p *Provider) SetStatus(ctx context.Context, id string, req model.ActivationRequest) model.Reply {
	code, ok := activationCodes[req]
	if !ok {
		return model.TransportFailure{Err: fmt.Errorf("unknown activation request %q", req)}
	}
	return ParseReply(p.client.Call(ctx, ActionSetStatus, url.Values{"status": {code}, "id": {id}}))
}

// Balance reads the account balance.
func (p *Provider) Balance(ctx context.Context) model.Reply {
	return ParseReply(p.client.Call(ctx, ActionGetBalance, nil))
}

// Prices returns the ascending list of available prices.
func (p *Provider) Prices(ctx context.Context, service, country string) ([]float64, error) {
	params := url.Values{"service": {service}, "country": {country}, "currency": {p.currency}}
	raw, err := p.client.Call(ctx, ActionGetPrices, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrProviderUnavailable, err)
	}
	prices, err := ParsePrices(raw, service, country)
	if err != nil {
		return nil, &domainErrors.ProviderError{Message: raw}
	}
	return prices, nil
}
