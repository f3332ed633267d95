package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/listing"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/pkg/errs"
)

// CreateOrderCommandHandler places a new order at buyer checkout.
// Reads the listing to derive the seller and the total amount, verifies the
// listing is active, and persists the order in PendingSellerConfirmation.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command and returns the placed order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	activeStatusID, err := uow.StatusRepository().GetByDomainAndCode(ctx,
		listing.StatusDomain, listing.StatusCodeActive)
	if err != nil {
		return nil, err
	}

	offer, err := uow.ListingRepository().Get(ctx, command.ListingID())
	if err != nil {
		return nil, err
	}

	if offer.StatusID() != activeStatusID {
		return nil, errs.NewInvalidStateError("order against the listing", "an inactive listing")
	}

	orderRepo := uow.OrderRepository()

	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		orderID,
		command.Actor().ID(),
		offer.SellerID(),
		offer.ID(),
		offer.Price(),
		command.PaymentKind(),
		command.ShippingAddress(),
	)
	if err != nil {
		return nil, err
	}

	if err := orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
