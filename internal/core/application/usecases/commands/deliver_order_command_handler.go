package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/core/ports"
)

// DeliverOrderCommandHandler records the buyer's delivery acknowledgement,
// moving the order to Delivered and stamping the delivery time. Publishes an
// advisory event after commit.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewDeliverOrderCommandHandler creates a handler for delivery confirmation.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery confirmation and returns the updated order.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, command DeliverOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	delivered, err := applyOrderTransition(ctx, h.uowFactory, command.OrderID(), command.RowVersion(),
		func(aggregate *order.Order) error {
			return aggregate.Deliver(command.Actor())
		})
	if err != nil {
		return nil, err
	}

	notifyOrderChanged(ctx, h.notifier, delivered, "deliver")
	return delivered, nil
}
