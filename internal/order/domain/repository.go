package domain

import (
	"context"
	"time"
)

// ListOrdersFilter narrows an order fetch. A zero value means "no extra
// filtering". Limit, when positive, becomes a LIMIT on the query; the
// export paths use it to cap the raw record count so the aggregation
// stays bounded.
type ListOrdersFilter struct {
	ServiceType ServiceType
	Status      Status
	Limit       int
}

// Repository supplies the raw rows the report builders consume. Date
// filtering is always applied here, never downstream.
type Repository interface {
	ListOrders(ctx context.Context, from, to time.Time, f ListOrdersFilter) ([]Order, error)
	ListClients(ctx context.Context) ([]Client, error)
	CountClients(ctx context.Context) (int64, error)
	ListValuators(ctx context.Context, activeOnly bool) ([]Valuator, error)
}
