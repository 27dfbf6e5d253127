package test

import (
	"context"
	"sync"

	"github.com/polkiloo/smsrent/internal/domain/model"
)

// GatewayCall records a provider action issued through GatewayStub.
type GatewayCall struct {
	Action   string
	ID       string
	Service  string
	Country  string
	MaxPrice *float64
	Request  model.ActivationRequest
}

// GatewayStub answers provider actions with configured replies.
type GatewayStub struct {
	NumberReply  model.Reply
	StatusReply  model.Reply
	SetReply     model.Reply
	BalanceReply model.Reply
	PriceList    []float64
	PricesErr    error

	mu    sync.Mutex
	Calls []GatewayCall
}

func (s *GatewayStub) record(call GatewayCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, call)
}

// CallCount returns the number of recorded actions.
func (s *GatewayStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// RequestNumber returns NumberReply.
func (s *GatewayStub) RequestNumber(ctx context.Context, service, country string, maxPrice *float64) model.Reply {
	s.record(GatewayCall{Action: "getNumber", Service: service, Country: country, MaxPrice: maxPrice})
	return orOpaque(s.NumberReply)
}

// Status returns StatusReply.
func (s *GatewayStub) Status(ctx context.Context, id string) model.Reply {
	s.record(GatewayCall{Action: "getStatus", ID: id})
	return orOpaque(s.StatusReply)
}

// SetStatus returns SetReply.
func (s *GatewayStub) SetStatus(ctx context.Context, id string, req model.ActivationRequest) model.Reply {
	s.record(GatewayCall{Action: "setStatus", ID: id, Request: req})
	return orOpaque(s.SetReply)
}

// Balance returns BalanceReply.
func (s *GatewayStub) Balance(ctx context.Context) model.Reply {
	s.record(GatewayCall{Action: "getBalance"})
	return orOpaque(s.BalanceReply)
}

// Prices returns PriceList or PricesErr.
func (s *GatewayStub) Prices(ctx context.Context, service, country string) ([]float64, error) {
	s.record(GatewayCall{Action: "getPrices", Service: service, Country: country})
	if s.PricesErr != nil {
		return nil, s.PricesErr
	}
	return s.PriceList, nil
}

func orOpaque(r model.Reply) model.Reply {
	if r == nil {
		return model.Opaque{}
	}
	return r
}
