package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/core/ports"
)

// ShipOrderCommandHandler marks an order as shipped and records the shipment
// details. Publishes an advisory event after commit so the buyer can be told
// the parcel is on its way.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewShipOrderCommandHandler creates a handler for shipment operations.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the shipment and returns the updated order.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, command ShipOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	shipped, err := applyOrderTransition(ctx, h.uowFactory, command.OrderID(), command.RowVersion(),
		func(aggregate *order.Order) error {
			return aggregate.Ship(command.Actor(), command.Provider(), command.TrackingNumber())
		})
	if err != nil {
		return nil, err
	}

	notifyOrderChanged(ctx, h.notifier, shipped, "ship")
	return shipped, nil
}
