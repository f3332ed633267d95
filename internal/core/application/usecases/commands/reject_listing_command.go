package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/listing"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrRejectListingCommandIsNotConstructed = errors.New(
		"RejectListingCommand must be created via NewRejectListingCommand constructor",
	)
)

// RejectListingCommand represents an admin rejecting a pending listing,
// with a required reason shown to the seller.
type RejectListingCommand struct { //nolint:recvcheck //using for validation
	listingID  int64
	actor      kernel.Actor
	reason     string
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewRejectListingCommand creates a command for an admin to reject a listing.
func NewRejectListingCommand(
	listingID int64,
	actor kernel.Actor,
	reason string,
	rowVersion kernel.RowVersion,
) (RejectListingCommand, error) {
	cmd := RejectListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setActor(actor),
		cmd.setReason(reason),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return RejectListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectListingCommand) Validate() error {
	return c.guard.Validate(ErrRejectListingCommandIsNotConstructed)
}

// ListingID returns the listing being rejected.
func (c RejectListingCommand) ListingID() int64 {
	return c.listingID
}

// Actor returns the caller, expected to hold the admin role.
func (c RejectListingCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the moderation rejection reason.
func (c RejectListingCommand) Reason() string {
	return c.reason
}

// RowVersion returns the version the caller last observed.
func (c RejectListingCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *RejectListingCommand) setListingID(listingID int64) error {
	if listingID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("listing id",
			fmt.Errorf("%d is not greater than 0", listingID))
	}

	c.listingID = listingID
	return nil
}

func (c *RejectListingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectListingCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if len(reason) > listing.MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, listing.MaxReasonLength)
	}

	c.reason = reason
	return nil
}

func (c *RejectListingCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
