package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents either party withdrawing an order before
// shipment, with a required reason shown to the other party.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actor      kernel.Actor
	reason     string
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command for a party to cancel an order.
func NewCancelOrderCommand(
	orderID int64,
	actor kernel.Actor,
	reason string,
	rowVersion kernel.RowVersion,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setReason(reason),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns the caller, expected to be the buyer or the seller.
func (c CancelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// RowVersion returns the version the caller last observed.
func (c CancelOrderCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if len(reason) > order.MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, order.MaxReasonLength)
	}

	c.reason = reason
	return nil
}

func (c *CancelOrderCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
