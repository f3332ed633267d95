// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, including the conditional row-version update that enforces the
// optimistic concurrency guard.
package orderrepo

import (
	"time"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by the parties and status for the per-actor listings and the
// finalization sweep.
type OrderDTO struct {
	ID               int64 `gorm:"primaryKey"`
	BuyerID          int64 `gorm:"index"`
	SellerID         int64 `gorm:"index"`
	ListingID        int64
	TotalAmount      int64
	PaymentKind      int
	Status           int `gorm:"index"`
	ShippingAddress  string
	ShippingProvider *string
	TrackingNumber   *string
	PaymentProofURL  *string
	Reason           *string
	MoneyReceivedAt  *time.Time
	DeliveredAt      *time.Time `gorm:"index"`
	CreatedAt        time.Time
	RowVersion       uint64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// The row version column carries the post-mutation counter.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID(),
		BuyerID:          aggregate.BuyerID(),
		SellerID:         aggregate.SellerID(),
		ListingID:        aggregate.ListingID(),
		TotalAmount:      aggregate.TotalAmount(),
		PaymentKind:      int(aggregate.PaymentKind()),
		Status:           int(aggregate.Status()),
		ShippingAddress:  aggregate.ShippingAddress(),
		ShippingProvider: aggregate.ShippingProvider(),
		TrackingNumber:   aggregate.TrackingNumber(),
		PaymentProofURL:  aggregate.PaymentProofURL(),
		Reason:           aggregate.Reason(),
		MoneyReceivedAt:  aggregate.MoneyReceivedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CreatedAt:        aggregate.CreatedAt(),
		RowVersion:       aggregate.RowVersion().Counter(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               dto.ID,
		BuyerID:          dto.BuyerID,
		SellerID:         dto.SellerID,
		ListingID:        dto.ListingID,
		TotalAmount:      dto.TotalAmount,
		PaymentKind:      order.PaymentKind(dto.PaymentKind),
		Status:           order.Status(dto.Status),
		ShippingAddress:  dto.ShippingAddress,
		ShippingProvider: dto.ShippingProvider,
		TrackingNumber:   dto.TrackingNumber,
		PaymentProofURL:  dto.PaymentProofURL,
		Reason:           dto.Reason,
		MoneyReceivedAt:  dto.MoneyReceivedAt,
		DeliveredAt:      dto.DeliveredAt,
		CreatedAt:        dto.CreatedAt,
		RowVersion:       kernel.RowVersionFromCounter(dto.RowVersion),
	})
}
