package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
)

// DeliverOrderCommand represents the buyer acknowledging receipt of the parcel.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actor      kernel.Actor
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command for the buyer to confirm delivery.
func NewDeliverOrderCommand(
	orderID int64,
	actor kernel.Actor,
	rowVersion kernel.RowVersion,
) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c DeliverOrderCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns the caller, expected to be the order's buyer.
func (c DeliverOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// RowVersion returns the version the caller last observed.
func (c DeliverOrderCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *DeliverOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeliverOrderCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
