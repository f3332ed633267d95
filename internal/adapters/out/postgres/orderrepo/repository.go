package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID reserves the next order identifier from the orders sequence.
func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('orders_id_seq')").Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order through a conditional write: the UPDATE is
// scoped by primary key and the row version the aggregate was loaded with, so
// a writer racing against a committed change touches zero rows and gets a
// ConcurrencyConflict error instead of overwriting it.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
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

// classifyZeroRowUpdate distinguishes a vanished row from a version mismatch.
func (r *GormOrderRepository) classifyZeroRowUpdate(ctx context.Context, aggregate *order.Order) error {
	var stored OrderDTO
	err := r.db.WithContext(ctx).Select("row_version").First(&stored, "id = ?", aggregate.ID()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order id", aggregate.ID())
	}
	if err != nil {
		return err
	}

	return errs.NewConcurrencyConflictError(
		"order",
		aggregate.PersistedRowVersion().Token(),
		kernel.RowVersionFromCounter(stored.RowVersion).Token(),
	)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDeliveredBefore retrieves delivered orders whose delivery
// acknowledgement predates the cutoff. Used by the finalization sweep.
func (r *GormOrderRepository) GetAllDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status = ? AND delivered_at < ?", order.Delivered, cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
