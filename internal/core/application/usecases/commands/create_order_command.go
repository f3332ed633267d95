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
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a buyer's checkout against an active listing.
// The seller and total amount are derived from the listing by the handler,
// so the command only carries what the buyer chose.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(buyer, listingID, order.BankTransfer, "221B Baker Street")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %d awaits seller confirmation", placed.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor           kernel.Actor
	listingID       int64
	paymentKind     order.PaymentKind
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command for the given buyer.
// Validates the actor, listing reference, payment kind and shipping address.
func NewCreateOrderCommand(
	actor kernel.Actor,
	listingID int64,
	paymentKind order.PaymentKind,
	shippingAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setListingID(listingID),
		cmd.setPaymentKind(paymentKind),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the buyer placing the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// ListingID returns the listing the buyer is ordering against.
func (c CreateOrderCommand) ListingID() int64 {
	return c.listingID
}

// PaymentKind returns the settlement method the buyer chose.
func (c CreateOrderCommand) PaymentKind() order.PaymentKind {
	return c.paymentKind
}

// ShippingAddress returns the buyer's delivery address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setListingID(listingID int64) error {
	if listingID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("listing id",
			fmt.Errorf("%d is not greater than 0", listingID))
	}

	c.listingID = listingID
	return nil
}

func (c *CreateOrderCommand) setPaymentKind(paymentKind order.PaymentKind) error {
	if err := paymentKind.Validate(); err != nil {
		return err
	}

	c.paymentKind = paymentKind
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}

	c.shippingAddress = shippingAddress
	return nil
}
