package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/core/ports"
)

// ConfirmPaymentCommandHandler attaches the buyer's payment proof to an order
// awaiting offline payment. The status is unchanged; the seller still has to
// confirm the money arrived. Publishes an advisory event after commit.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewConfirmPaymentCommandHandler creates a handler for payment proof submission.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the proof submission and returns the updated order.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, command ConfirmPaymentCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	updated, err := applyOrderTransition(ctx, h.uowFactory, command.OrderID(), command.RowVersion(),
		func(aggregate *order.Order) error {
			return aggregate.SubmitPaymentProof(command.Actor(), command.ProofURL())
		})
	if err != nil {
		return nil, err
	}

	notifyOrderChanged(ctx, h.notifier, updated, "confirm-payment")
	return updated, nil
}
