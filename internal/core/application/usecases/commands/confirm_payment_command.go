package commands

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
)

// ConfirmPaymentCommand represents the buyer attaching a payment proof to an
// order awaiting offline payment. The proof image is stored before the command
// runs; the command carries the resulting public URL.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actor      kernel.Actor
	proofURL   string
	rowVersion kernel.RowVersion

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command for the buyer to submit a payment proof.
func NewConfirmPaymentCommand(
	orderID int64,
	actor kernel.Actor,
	proofURL string,
	rowVersion kernel.RowVersion,
) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setProofURL(proofURL),
		cmd.setRowVersion(rowVersion),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the order the proof belongs to.
func (c ConfirmPaymentCommand) OrderID() int64 {
	return c.orderID
}

// Actor returns the caller, expected to be the order's buyer.
func (c ConfirmPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

// ProofURL returns the public URL of the stored proof image.
func (c ConfirmPaymentCommand) ProofURL() string {
	return c.proofURL
}

// RowVersion returns the version the caller last observed.
func (c ConfirmPaymentCommand) RowVersion() kernel.RowVersion {
	return c.rowVersion
}

func (c *ConfirmPaymentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ConfirmPaymentCommand) setProofURL(proofURL string) error {
	if proofURL == "" {
		return errs.NewValueIsRequiredError("payment proof")
	}

	c.proofURL = proofURL
	return nil
}

func (c *ConfirmPaymentCommand) setRowVersion(rowVersion kernel.RowVersion) error {
	if err := rowVersion.Validate(); err != nil {
		return err
	}

	c.rowVersion = rowVersion
	return nil
}
