package usecase

import (
	"context"

	"github.com/polkiloo/smsrent/internal/domain/model"
)

// Gateway issues provider actions and returns parsed replies.
type Gateway interface {
	RequestNumber(ctx context.Context, service, country string, maxPrice *float64) model.Reply
	Status(ctx context.Context, id string) model.Reply
	SetStatus(ctx context.Context, id string, req model.ActivationRequest) model.Reply
	Balance(ctx context.Context) model.Reply
	Prices(ctx context.Context, service, country string) ([]float64, error)
}

// Catalog resolves codes to display names.
type Catalog interface {
	ServiceName(code string) (string, bool)
	CountryName(code string) (string, bool)
}
