package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrConfirmMoneyReceivedCommandIsNotConstructed = errors.New(
		"ConfirmMoneyReceivedCommand must be created via NewConfirmMoneyReceivedCommand constructor",
	)
)

// ConfirmMoneyReceivedCommand represents the seller acknowledging receipt of
// the buyer's funds, either releasing a bank-transfer order for shipment or
// closing the money loop on a delivered cash-on-delivery order.
type ConfirmMoneyReceivedCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actor      kernel.Actor
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewConfirmMoneyReceivedCommand creates a command for the seller to confirm funds arrived.
func NewConfirmMoneyReceivedCommand(
	orderID int64,
	actor kernel.Actor,
	rowVersion kernel.RowVersion,
) (ConfirmMoneyReceivedCommand, error) {
	cmd := ConfirmMoneyReceivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return ConfirmMoneyReceivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmMoneyReceivedCommand) Validate() error {
	return c.guard.Validate(ErrConfirmMoneyReceivedCommandIsNotConstructed)
}

// OrderID returns the order whose payment is being confirmed.
func (c ConfirmMoneyReceivedCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns the caller, expected to be the order's seller.
func (c ConfirmMoneyReceivedCommand) Actor() kernel.Actor {
	return c.actor
}

// RowVersion returns the version the caller last observed.
func (c ConfirmMoneyReceivedCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *ConfirmMoneyReceivedCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmMoneyReceivedCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ConfirmMoneyReceivedCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
