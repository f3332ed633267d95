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
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
)

// RejectOrderCommand represents the seller declining a pending order,
// with a required reason shown to the buyer.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actor      kernel.Actor
	reason     string
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for the seller to decline an order.
func NewRejectOrderCommand(
	orderID int64,
	actor kernel.Actor,
	reason string,
	rowVersion kernel.RowVersion,
) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setReason(reason),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order being rejected.
func (c RejectOrderCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns the caller, expected to be the order's seller.
func (c RejectOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the rejection reason.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

// RowVersion returns the version the caller last observed.
func (c RejectOrderCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *RejectOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if len(reason) > order.MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, order.MaxReasonLength)
	}

	c.reason = reason
	return nil
}

func (c *RejectOrderCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
