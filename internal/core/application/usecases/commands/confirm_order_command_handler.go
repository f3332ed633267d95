package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/core/ports"
)

// ConfirmOrderCommandHandler accepts a pending order on behalf of the seller.
// Bank-transfer orders move to AwaitingOfflinePayment, cash-on-delivery orders
// straight to PendingShipment. Publishes an advisory event after commit.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the confirmation and returns the updated order.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	confirmed, err := applyOrderTransition(ctx, h.uowFactory, command.OrderID(), command.RowVersion(),
		func(aggregate *order.Order) error {
			return aggregate.Confirm(command.Actor())
		})
	if err != nil {
		return nil, err
	}

	notifyOrderChanged(ctx, h.notifier, confirmed, "confirm")
	return confirmed, nil
}
