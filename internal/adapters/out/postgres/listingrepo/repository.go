package listingrepo

import (
	"context"
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/listing"
	"bookmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormListingRepository implements ListingRepository using GORM.
type GormListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB, tracker aggregateTracker) *GormListingRepository {
	return &GormListingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new listing to the database.
func (r *GormListingRepository) Add(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing listing through the conditional row-version write.
// Zero affected rows means the row vanished or a concurrent moderation won.
func (r *GormListingRepository) Update(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ListingDTO{}).
		Where("id = ? AND row_version = ?", dto.ID, aggregate.PersistedRowVersion().Counter()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyZeroRowUpdate(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormListingRepository) classifyZeroRowUpdate(ctx context.Context, aggregate *listing.Listing) error {
	var stored ListingDTO
	err := r.db.WithContext(ctx).Select("row_version").First(&stored, "id = ?", aggregate.ID()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("listing id", aggregate.ID())
	}
	if err != nil {
		return err
	}

	return errs.NewConcurrencyConflictError(
		"listing",
		aggregate.PersistedRowVersion().Token(),
		kernel.RowVersionFromCounter(stored.RowVersion).Token(),
	)
}

// Get retrieves a listing by ID.
func (r *GormListingRepository) Get(ctx context.Context, id int64) (*listing.Listing, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("listing id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	var dto ListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("listing id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
