package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/order"
)

// ConfirmMoneyReceivedCommandHandler records that the seller received the
// buyer's funds. An order awaiting offline payment moves to PendingShipment;
// a delivered cash-on-delivery order only gets its receipt time stamped.
type ConfirmMoneyReceivedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmMoneyReceivedCommandHandler creates a handler for money receipt confirmation.
func NewConfirmMoneyReceivedCommandHandler(uowFactory OrderUoWFactory) ConfirmMoneyReceivedCommandHandler {
	return ConfirmMoneyReceivedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation and returns the updated order.
func (h ConfirmMoneyReceivedCommandHandler) Handle(
	ctx context.Context,
	command ConfirmMoneyReceivedCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return applyOrderTransition(ctx, h.uowFactory, command.OrderID(), command.RowVersion(),
		func(aggregate *order.Order) error {
			return aggregate.ConfirmMoneyReceived(command.Actor())
		})
}
