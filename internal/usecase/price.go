package usecase

import (
	"context"
	"slices"
)

// PriceUseCase lists provider prices for a catalog selection.
type PriceUseCase struct {
	gateway Gateway
	catalog Catalog
}

// NewPriceUseCase constructs PriceUseCase.
func NewPriceUseCase(gateway Gateway, catalog Catalog) *PriceUseCase {
	return &PriceUseCase{gateway: gateway, catalog: catalog}
}

// List returns the ascending price list for service in country.
func (u *PriceUseCase) List(ctx context.Context, service, country string) ([]float64, error) {
	if _, err := ValidateSelection(u.catalog, service, country); err != nil {
		return nil, err
	}
	prices, err := u.gateway.Prices(ctx, service, country)
	if err != nil {
		return nil, err
	}
	if prices == nil {
		prices = []float64{}
	}
	return prices, nil
}

// ResolvePrice picks the recorded price of a new rental: the requested
// maximum when the provider lists it, else the cheapest, else 0.
func ResolvePrice(prices []float64, maxPrice *float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	if maxPrice != nil && slices.Contains(prices, *maxPrice) {
		return *maxPrice
	}
	return prices[0]
}
