package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/polkiloo/smsrent/internal/domain/model"
)

// OrderResponse is the JSON shape of a rental.
type OrderResponse struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Service     string     `json:"service"`
	ServiceName string     `json:"service_name"`
	Country     string     `json:"country"`
	CountryName string     `json:"country_name"`
	Status      string     `json:"status"`
	SMS         string     `json:"sms"`
	Price       float64    `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

// CreateOrderRequest is the body of POST /api/create.
type CreateOrderRequest struct {
	Service  string        `json:"service"`
	Country  string        `json:"country"`
	MaxPrice OptionalPrice `json:"maxPrice"`
}

// OptionalPrice accepts a JSON number, a numeric string, null or "".
// Zero counts as absent.
type OptionalPrice struct {
	value *float64
}

// NewOptionalPrice returns a set price.
func NewOptionalPrice(v float64) OptionalPrice {
	return OptionalPrice{value: &v}
}

// Ptr returns the price or nil when absent.
func (p OptionalPrice) Ptr() *float64 {
	return p.value
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *OptionalPrice) UnmarshalJSON(data []byte) error {
	p.value = nil
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("maxPrice: %w", err)
	}
	if v != 0 {
		p.value = &v
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p OptionalPrice) MarshalJSON() ([]byte, error) {
	if p.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*p.value)
}

// CreateOrderResponse wraps a newly rented order.
type CreateOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// OrdersResponse wraps an order listing.
type OrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// StatusResponse is the result of a status poll.
type StatusResponse struct {
	Status string  `json:"status"`
	SMS    *string `json:"sms,omitempty"`
}

// NewStatusResponse carries sms for a completed order, even when empty.
func NewStatusResponse(status, sms string) StatusResponse {
	resp := StatusResponse{Status: status}
	if status == string(model.OrderStatusCompleted) || sms != "" {
		resp.SMS = &sms
	}
	return resp
}

// ActionResponse acknowledges a lifecycle action.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is returned on every failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
