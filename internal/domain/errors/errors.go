package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidService      = errors.New("invalid service")
	ErrInvalidCountry      = errors.New("invalid country")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ProviderError carries a provider rejection verbatim.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "provider rejected request: " + e.Message
}

// StoreError marks a persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
