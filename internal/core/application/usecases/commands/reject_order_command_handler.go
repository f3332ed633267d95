package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/order"
)

// RejectOrderCommandHandler declines a pending order on behalf of the seller,
// moving it to the terminal RejectedBySeller status.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection and returns the updated order.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return applyOrderTransition(ctx, h.uowFactory, command.OrderID(), command.RowVersion(),
		func(aggregate *order.Order) error {
			return aggregate.Reject(command.Actor(), command.Reason())
		})
}
