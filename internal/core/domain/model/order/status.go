package order

import (
	"fmt"

	"bookmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the marketplace fulfillment workflow.
//
// State transitions:
//
//	PendingSellerConfirmation ──┬──> AwaitingOfflinePayment ──> PendingShipment ──> Shipped ──> Delivered ──> Completed
//	                            │        (bank transfer)   (money confirmed)
//	                            ├──> PendingShipment (cash on delivery)
//	                            └──> RejectedBySeller
//
//	PendingSellerConfirmation, AwaitingOfflinePayment, PendingShipment ──> Cancelled
//
// Completed, RejectedBySeller, and Cancelled are terminal: no transition
// leaves them. Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingSellerConfirmation is the initial status after buyer checkout.
	// The seller must confirm or reject the order.
	PendingSellerConfirmation

	// AwaitingOfflinePayment indicates the seller confirmed a bank-transfer
	// order and is waiting for the buyer's payment (and proof upload).
	AwaitingOfflinePayment

	// PendingShipment indicates payment is settled (or deferred to delivery)
	// and the seller must ship the book.
	PendingShipment

	// Shipped indicates the seller handed the package to a shipping provider.
	Shipped

	// Delivered indicates the buyer acknowledged receipt.
	Delivered

	// Completed is the terminal success state, reached on finalization.
	Completed

	// RejectedBySeller is a terminal state: the seller declined the order.
	RejectedBySeller

	// Cancelled is a terminal state: buyer or seller cancelled pre-shipment.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                   "Unknown",
		PendingSellerConfirmation: "PendingSellerConfirmation",
		AwaitingOfflinePayment:    "AwaitingOfflinePayment",
		PendingShipment:           "PendingShipment",
		Shipped:                   "Shipped",
		Delivered:                 "Delivered",
		Completed:                 "Completed",
		RejectedBySeller:          "RejectedBySeller",
		Cancelled:                 "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingSellerConfirmation: "PendingSellerConfirmation",
		AwaitingOfflinePayment:    "AwaitingOfflinePayment",
		PendingShipment:           "PendingShipment",
		Shipped:                   "Shipped",
		Delivered:                 "Delivered",
		Completed:                 "Completed",
		RejectedBySeller:          "RejectedBySeller",
		Cancelled:                 "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid. Used to reject status
// values arriving from external sources (database, API) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == RejectedBySeller || s == Cancelled
}

// Confirm transitions the status when the seller accepts the order.
//
// Valid transitions:
//   - PendingSellerConfirmation -> AwaitingOfflinePayment (bank transfer)
//   - PendingSellerConfirmation -> PendingShipment (cash on delivery)
//
// Returns (0, InvalidStateError) from any other status.
func (s Status) Confirm(kind PaymentKind) (Status, error) {
	if s != PendingSellerConfirmation {
		return 0, errs.NewInvalidStateError("confirm", s.String())
	}
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	if kind == BankTransfer {
		return AwaitingOfflinePayment, nil
	}
	return PendingShipment, nil
}

// Reject transitions the status when the seller declines the order.
//
// Valid transitions:
//   - PendingSellerConfirmation -> RejectedBySeller
func (s Status) Reject() (Status, error) {
	if s != PendingSellerConfirmation {
		return 0, errs.NewInvalidStateError("reject", s.String())
	}
	return RejectedBySeller, nil
}

// ValidateSubmitProof checks that a payment proof may be attached.
// Proof submission does not change the status, so there is no transition,
// but it is only legal while the order awaits an offline payment.
func (s Status) ValidateSubmitProof() error {
	if s != AwaitingOfflinePayment {
		return errs.NewInvalidStateError("submit payment proof", s.String())
	}
	return nil
}

// Ship transitions the status when the seller hands over the package.
//
// Valid transitions:
//   - PendingShipment -> Shipped
func (s Status) Ship() (Status, error) {
	if s != PendingShipment {
		return 0, errs.NewInvalidStateError("ship", s.String())
	}
	return Shipped, nil
}

// Deliver transitions the status when the buyer acknowledges receipt.
//
// Valid transitions:
//   - Shipped -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidStateError("deliver", s.String())
	}
	return Delivered, nil
}

// Cancel transitions the status when a party withdraws pre-shipment.
//
// Valid transitions:
//   - PendingSellerConfirmation -> Cancelled
//   - AwaitingOfflinePayment -> Cancelled
//   - PendingShipment -> Cancelled
//
// Once shipped (or terminal), cancellation is no longer possible.
func (s Status) Cancel() (Status, error) {
	if s != PendingSellerConfirmation && s != AwaitingOfflinePayment && s != PendingShipment {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}
	return Cancelled, nil
}

// Finalize transitions a delivered order into the terminal success state.
//
// Valid transitions:
//   - Delivered -> Completed
func (s Status) Finalize() (Status, error) {
	if s != Delivered {
		return 0, errs.NewInvalidStateError("finalize", s.String())
	}
	return Completed, nil
}
