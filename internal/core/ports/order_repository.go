package ports

import (
	"context"
	"time"

	"bookmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update must be scoped by both primary key and the aggregate's persisted row
// version so that a losing writer's update affects zero rows; implementations
// report that outcome as a ConcurrencyConflict error. This conditional-update
// pattern is the only concurrency-correctness mechanism in the system.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// conditional write on the persisted row version.
	Update(ctx context.Context, aggregate *order.Order) error

	// NextID reserves and returns the next order identifier from storage.
	NextID(ctx context.Context) (int64, error)

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllDeliveredBefore retrieves orders delivered before the cutoff that
	// have not yet been finalized. Used by the finalization job.
	GetAllDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
