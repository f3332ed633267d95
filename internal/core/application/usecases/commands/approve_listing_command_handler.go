package commands

import (
	"context"

	"bookmarket/internal/core/domain/model/listing"
	"bookmarket/internal/pkg/errs"
)

// ApproveListingCommandHandler moves a pending listing to the active status.
// Listing states live in the status lookup table, so the handler resolves the
// Pending and Active ids before handing them to the aggregate.
type ApproveListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewApproveListingCommandHandler creates a handler for listing approval.
func NewApproveListingCommandHandler(uowFactory ListingUoWFactory) ApproveListingCommandHandler {
	return ApproveListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval and returns the updated listing.
func (h ApproveListingCommandHandler) Handle(
	ctx context.Context,
	command ApproveListingCommand,
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

	activeID, err := statusRepo.GetByDomainAndCode(ctx, listing.StatusDomain, listing.StatusCodeActive)
	if err != nil {
		return nil, err
	}

	listingRepo := uow.ListingRepository()

	aggregate, err := listingRepo.Get(ctx, command.ListingID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.Approve(command.Actor(), pendingID, activeID); err != nil {
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
