package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"
	"github.com/polkiloo/smsrent/internal/domain/model"
	"github.com/polkiloo/smsrent/internal/test"
)

func TestBalanceUseCaseReturnsValue(t *testing.T) {
	uc := NewBalanceUseCase(&test.GatewayStub{BalanceReply: model.BalanceReport{Value: "100.50", Raw: "ACCESS_BALANCE:100.50"}})
	balance, err := uc.Balance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != "100.50" {
		t.Fatalf("expected 100.50, got %s", balance)
	}
}

func TestBalanceUseCaseFailures(t *testing.T) {
	uc := NewBalanceUseCase(&test.GatewayStub{BalanceReply: model.TransportFailure{Err: errors.New("timeout")}})
	if _, err := uc.Balance(context.Background()); !errors.Is(err, domainErrors.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	uc = NewBalanceUseCase(&test.GatewayStub{BalanceReply: model.Opaque{Raw: "BAD_KEY"}})
	_, err := uc.Balance(context.Background())
	var perr *domainErrors.ProviderError
	if !errors.As(err, &perr) || perr.Message != "BAD_KEY" {
		t.Fatalf("expected provider error, got %v", err)
	}
}
