package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmOrderCommand represents the seller accepting a pending order.
// Carries the row version the caller last observed; a stale version is
// rejected with a concurrency conflict instead of silently overwriting.
//
// Example:
//
//	version, err := kernel.RowVersionFromToken(req.RowVersion)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewConfirmOrderCommand(orderID, seller, version)
//	if err != nil {
//	    return err
//	}
//	confirmed, err := handler.Handle(ctx, cmd)
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actor      kernel.Actor
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command for the seller to accept an order.
func NewConfirmOrderCommand(
	orderID int64,
	actor kernel.Actor,
	rowVersion kernel.RowVersion,
) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmOrderCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns the caller, expected to be the order's seller.
func (c ConfirmOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// RowVersion returns the version the caller last observed.
func (c ConfirmOrderCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *ConfirmOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ConfirmOrderCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
