package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"
	"github.com/polkiloo/smsrent/internal/domain/model"
)

// BalanceUseCase reads the provider account balance.
type BalanceUseCase struct {
	gateway Gateway
}

// NewBalanceUseCase constructs BalanceUseCase.
func NewBalanceUseCase(gateway Gateway) *BalanceUseCase {
	return &BalanceUseCase{gateway: gateway}
}

// Balance returns the balance exactly as reported by the provider.
func (u *BalanceUseCase) Balance(ctx context.Context) (string, error) {
	reply := u.gateway.Balance(ctx)
	if report, ok := reply.(model.BalanceReport); ok {
		return report.Value, nil
	}
	return "", providerFailure(reply)
}

// providerFailure converts an unmatched reply into an error. Transport
// failures and empty replies mean the provider is unavailable.
func providerFailure(reply model.Reply) error {
	if failure, ok := reply.(model.TransportFailure); ok {
		return fmt.Errorf("%w: %v", domainErrors.ErrProviderUnavailable, failure.Err)
	}
	if reply == nil || reply.Text() == "" {
		return domainErrors.ErrProviderUnavailable
	}
	return &domainErrors.ProviderError{Message: reply.Text()}
}
