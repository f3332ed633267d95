package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
)

// ShipOrderCommand represents the seller handing the order to a shipping
// provider, recording the provider name and tracking number for the buyer.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        int64
	actor          kernel.Actor
	provider       string
	trackingNumber string
	rowVersion     kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command for the seller to mark the order shipped.
func NewShipOrderCommand(
	orderID int64,
	actor kernel.Actor,
	provider string,
	trackingNumber string,
	rowVersion kernel.RowVersion,
) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setProvider(provider),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the order being shipped.
func (c ShipOrderCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns the caller, expected to be the order's seller.
func (c ShipOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Provider returns the shipping provider name.
func (c ShipOrderCommand) Provider() string {
	return c.provider
}

// TrackingNumber returns the parcel tracking number.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

// RowVersion returns the version the caller last observed.
func (c ShipOrderCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *ShipOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ShipOrderCommand) setProvider(provider string) error {
	if provider == "" {
		return errs.NewValueIsRequiredError("shippingProvider")
	}

	c.provider = provider
	return nil
}

func (c *ShipOrderCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *ShipOrderCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
