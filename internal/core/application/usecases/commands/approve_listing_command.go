package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrApproveListingCommandIsNotConstructed = errors.New(
		"ApproveListingCommand must be created via NewApproveListingCommand constructor",
	)
)

// ApproveListingCommand represents an admin approving a pending listing,
// making it visible to buyers.
type ApproveListingCommand struct { //nolint:recvcheck //using for validation
	listingID  int64
	actor      kernel.Actor
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewApproveListingCommand creates a command for an admin to approve a listing.
func NewApproveListingCommand(
	listingID int64,
	actor kernel.Actor,
	rowVersion kernel.RowVersion,
) (ApproveListingCommand, error) {
	cmd := ApproveListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setActor(actor),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return ApproveListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveListingCommand) Validate() error {
	return c.guard.Validate(ErrApproveListingCommandIsNotConstructed)
}

// ListingID returns the listing being approved.
func (c ApproveListingCommand) ListingID() int64 {
	return c.listingID
}

// Actor returns the caller, expected to hold the admin role.
func (c ApproveListingCommand) Actor() kernel.Actor {
	return c.actor
}

// RowVersion returns the version the caller last observed.
func (c ApproveListingCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *ApproveListingCommand) setListingID(listingID int64) error {
	if listingID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("listing id",
			fmt.Errorf("%d is not greater than 0", listingID))
	}

	c.listingID = listingID
	return nil
}

func (c *ApproveListingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ApproveListingCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
