package dto

// PricesRequest is the body of POST /api/prices.
type PricesRequest struct {
	Service string `json:"service"`
	Country string `json:"country"`
}

// PricesResponse lists available prices in ascending order.
type PricesResponse struct {
	Success bool      `json:"success"`
	Prices  []float64 `json:"prices"`
}
