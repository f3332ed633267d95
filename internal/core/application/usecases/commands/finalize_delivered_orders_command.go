package commands

import (
	"errors"
	"time"

	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrFinalizeDeliveredOrdersCommandIsNotConstructed = errors.New(
		"FinalizeDeliveredOrdersCommand must be created via NewFinalizeDeliveredOrdersCommand constructor",
	)
)

// FinalizeDeliveredOrdersCommand represents the scheduled sweep that moves
// orders delivered before the cutoff into the terminal Completed status.
type FinalizeDeliveredOrdersCommand struct { //nolint:recvcheck //using for validation
	deliveredBefore time.Time

	guard guard.ConstructorGuard
}

// NewFinalizeDeliveredOrdersCommand creates a finalization command for orders
// delivered before the given cutoff.
func NewFinalizeDeliveredOrdersCommand(deliveredBefore time.Time) (FinalizeDeliveredOrdersCommand, error) {
	cmd := FinalizeDeliveredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if deliveredBefore.IsZero() {
		return FinalizeDeliveredOrdersCommand{}, errs.NewValueIsRequiredError("deliveredBefore")
	}
	cmd.deliveredBefore = deliveredBefore

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeDeliveredOrdersCommandIsNotConstructed)
}

// DeliveredBefore returns the cutoff: orders delivered before it are finalized.
func (c FinalizeDeliveredOrdersCommand) DeliveredBefore() time.Time {
	return c.deliveredBefore
}
