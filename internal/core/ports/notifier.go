package ports

import (
	"context"
	"time"
)

// OrderEvent describes a completed order transition for downstream consumers
// (notification feeds, analytics). Events are advisory: they are published
// after commit and are never awaited for correctness of the order state.
type OrderEvent struct {
	OrderID    int64     `json:"order_id"`
	BuyerID    int64     `json:"buyer_id"`
	SellerID   int64     `json:"seller_id"`
	Status     string    `json:"status"`
	Operation  string    `json:"operation"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier dispatches fire-and-forget order events. Implementations log
// delivery failures instead of propagating them.
type Notifier interface {
	NotifyOrderChanged(ctx context.Context, event OrderEvent) error
}
