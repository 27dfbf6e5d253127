package dto

// BalanceResponse carries the provider balance verbatim.
type BalanceResponse struct {
	Success bool   `json:"success"`
	Balance string `json:"balance"`
}
