package usecase

import domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"

// Selection is a validated service/country pair with display names.
type Selection struct {
	Service     string
	ServiceName string
	Country     string
	CountryName string
}

// ValidateSelection checks service then country against the catalog.
func ValidateSelection(catalog Catalog, service, country string) (Selection, error) {
	serviceName, ok := catalog.ServiceName(service)
	if !ok {
		return Selection{}, domainErrors.ErrInvalidService
	}
	countryName, ok := catalog.CountryName(country)
	if !ok {
		return Selection{}, domainErrors.ErrInvalidCountry
	}
	return Selection{
		Service:     service,
		ServiceName: serviceName,
		Country:     country,
		CountryName: countryName,
	}, nil
}
