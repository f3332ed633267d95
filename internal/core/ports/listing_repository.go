package ports

import (
	"context"

	"bookmarket/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
// Update follows the same conditional-write concurrency contract as
// OrderRepository.Update.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing aggregate using a
	// conditional write on the persisted row version.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*listing.Listing, error)
}
