package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/listing"
	"bookmarket/internal/pkg/errs"
)

// RejectListingCommandHandler moves a pending listing to the rejected status,
// recording the moderation reason for the seller.
type RejectListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewRejectListingCommandHandler creates a handler for listing rejection.
func NewRejectListingCommandHandler(uowFactory ListingUoWFactory) RejectListingCommandHandler {
	return RejectListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection and returns the updated listing.
func (h RejectListingCommandHandler) Handle(
	ctx context.Context,
	command RejectListingCommand,
) (*listing.Listing, error) {
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

	statusRepo := uow.StatusRepository()

	pendingID, err := statusRepo.GetByDomainAndCode(ctx, listing.StatusDomain, listing.StatusCodePending)
	if err != nil {
		return nil, err
	}

	rejectedID, err := statusRepo.GetByDomainAndCode(ctx, listing.StatusDomain, listing.StatusCodeRejected)
	if err != nil {
		return nil, err
	}

	listingRepo := uow.ListingRepository()

	aggregate, err := listingRepo.Get(ctx, command.ListingID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.Reject(command.Actor(), pendingID, rejectedID, command.Reason()); err != nil {
		return nil, err
	}

	if !command.RowVersion().IsEqual(aggregate.PersistedRowVersion()) {
		return nil, errs.NewConcurrencyConflictError(
			"listing",
			command.RowVersion().Token(),
			aggregate.PersistedRowVersion().Token(),
		)
	}

	if err := listingRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
