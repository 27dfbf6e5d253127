package model

import "time"

// OrderStatus describes rental lifecycle.
type OrderStatus string

const (
	OrderStatusWaiting   OrderStatus = "WAITING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusFinished  OrderStatus = "FINISHED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
	OrderStatusTimeout   OrderStatus = "TIMEOUT"
	OrderStatusDeleted   OrderStatus = "DELETED"
)

// ClosingStatuses stamp closed_at the first time an order enters one of them.
// COMPLETED closes an order yet keeps it in the active partition.
var ClosingStatuses = []OrderStatus{
	OrderStatusCanceled,
	OrderStatusTimeout,
	OrderStatusDeleted,
	OrderStatusCompleted,
}

// ActiveStatuses form the active partition; every other status is history.
var ActiveStatuses = []OrderStatus{
	OrderStatusWaiting,
	OrderStatusCompleted,
}

// Closes reports whether entering the status stamps closed_at.
func (s OrderStatus) Closes() bool {
	for _, st := range ClosingStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Active reports whether the status belongs to the active partition.
func (s OrderStatus) Active() bool {
	return s == OrderStatusWaiting || s == OrderStatusCompleted
}

// Order is a number rental issued by the provider.
type Order struct {
	ID          string
	Number      string
	Service     string
	ServiceName string
	Country     string
	CountryName string
	Status      OrderStatus
	SMS         string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
}

// OrderUpdate lists the mutable fields of an order; nil fields stay untouched.
type OrderUpdate struct {
	Status *OrderStatus
	SMS    *string
}

// StatusUpdate builds an update that only changes status.
func StatusUpdate(status OrderStatus) OrderUpdate {
	return OrderUpdate{Status: &status}
}
