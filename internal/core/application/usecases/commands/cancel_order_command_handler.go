package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/order"
)

// CancelOrderCommandHandler withdraws an order before shipment on behalf of
// the buyer or the seller, moving it to the terminal Cancelled status.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the updated order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return applyOrderTransition(ctx, h.uowFactory, command.OrderID(), command.RowVersion(),
		func(aggregate *order.Order) error {
			return aggregate.Cancel(command.Actor(), command.Reason())
		})
}
