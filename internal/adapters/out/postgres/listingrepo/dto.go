// Package listingrepo provides data transfer objects and mapping functions
// for listing persistence, following the same conditional-update concurrency
// contract as orderrepo.
package listingrepo

import (
	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/listing"
)

// ListingDTO represents the database structure for persisting listing aggregates.
type ListingDTO struct {
	ID              int64 `gorm:"primaryKey"`
	SellerID        int64 `gorm:"index"`
	BookID          int64
	Price           int64
	StatusID        int64 `gorm:"index"`
	RejectionReason *string
	RowVersion      uint64
}

// TableName specifies the database table name for listing entities.
func (ListingDTO) TableName() string {
	return "listings"
}

func fromDomain(aggregate *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:              aggregate.ID(),
		SellerID:        aggregate.SellerID(),
		BookID:          aggregate.BookID(),
		Price:           aggregate.Price(),
		StatusID:        aggregate.StatusID(),
		RejectionReason: aggregate.RejectionReason(),
		RowVersion:      aggregate.RowVersion().Counter(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	return listing.RestoreListing(listing.RestoreListingParams{
		ID:              dto.ID,
		SellerID:        dto.SellerID,
		BookID:          dto.BookID,
		Price:           dto.Price,
		StatusID:        dto.StatusID,
		RejectionReason: dto.RejectionReason,
		RowVersion:      kernel.RowVersionFromCounter(dto.RowVersion),
	})
}
