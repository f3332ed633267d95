package order

import (
	"errors"
	"fmt"
	"time"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// MaxReasonLength bounds rejection and cancellation reasons.
const MaxReasonLength = 500

// Order is the aggregate root of the fulfillment workflow: a buyer's
// commitment against a listing, progressing through the state machine in
// Status. All mutations go through the transition methods, which enforce in
// order: actor authorization against the order's parties, legality of the
// transition from the current status, and input validation. Every successful
// mutation advances the row version so a stale writer can be detected by the
// persistence layer's conditional update.
//
// Order follows these invariants:
//   - Buyer and seller are distinct, valid user references
//   - Total amount is positive; shipping address is non-empty
//   - Status transitions follow the table defined on Status
//   - Terminal states (Completed, RejectedBySeller, Cancelled) are never left
//   - Orders are never deleted; terminal states represent the end of life
type Order struct {
	id          int64
	buyerID     int64
	sellerID    int64
	listingID   int64
	totalAmount int64
	paymentKind PaymentKind

	status          Status
	shippingAddress string

	// set by Ship
	shippingProvider *string
	trackingNumber   *string

	// set by SubmitPaymentProof
	paymentProofURL *string

	// set by Reject and Cancel
	reason *string

	moneyReceivedAt *time.Time
	deliveredAt     *time.Time
	createdAt       time.Time

	// rowVersion is the version after in-memory mutations; persistedVersion is
	// the version the aggregate was loaded with, used by the conditional update.
	rowVersion       kernel.RowVersion
	persistedVersion kernel.RowVersion

	isConstructed bool
}

// NewOrder creates an order at buyer checkout in PendingSellerConfirmation
// status with the initial row version. All commercial fields are validated;
// a buyer cannot order their own listing.
func NewOrder(
	id, buyerID, sellerID, listingID, totalAmount int64,
	paymentKind PaymentKind,
	shippingAddress string,
) (*Order, error) {
	o := &Order{
		status:           PendingSellerConfirmation,
		createdAt:        time.Now().UTC(),
		rowVersion:       kernel.InitialRowVersion(),
		persistedVersion: kernel.InitialRowVersion(),
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setListingID(listingID),
		o.setTotalAmount(totalAmount),
		o.setPaymentKind(paymentKind),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an
// order aggregate from storage.
type RestoreOrderParams struct {
	ID               int64
	BuyerID          int64
	SellerID         int64
	ListingID        int64
	TotalAmount      int64
	PaymentKind      PaymentKind
	Status           Status
	ShippingAddress  string
	ShippingProvider *string
	TrackingNumber   *string
	PaymentProofURL  *string
	Reason           *string
	MoneyReceivedAt  *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	RowVersion       kernel.RowVersion
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The stored status and row version are validated before use so corrupt rows
// surface as errors instead of invalid aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.RowVersion.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:           params.Status,
		shippingProvider: params.ShippingProvider,
		trackingNumber:   params.TrackingNumber,
		paymentProofURL:  params.PaymentProofURL,
		reason:           params.Reason,
		moneyReceivedAt:  params.MoneyReceivedAt,
		deliveredAt:      params.DeliveredAt,
		createdAt:        params.CreatedAt,
		rowVersion:       params.RowVersion,
		persistedVersion: params.RowVersion,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setParties(params.BuyerID, params.SellerID),
		o.setListingID(params.ListingID),
		o.setTotalAmount(params.TotalAmount),
		o.setPaymentKind(params.PaymentKind),
		o.setShippingAddress(params.ShippingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int64 { return o.id }

// BuyerID returns the buyer's user id. The buyer owns the purchase intent.
func (o *Order) BuyerID() int64 { return o.buyerID }

// SellerID returns the seller's user id. The seller owns fulfillment obligations.
func (o *Order) SellerID() int64 { return o.sellerID }

// ListingID returns the listing the order was placed against.
func (o *Order) ListingID() int64 { return o.listingID }

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 { return o.totalAmount }

// PaymentKind returns how the order is settled.
func (o *Order) PaymentKind() PaymentKind { return o.paymentKind }

// Status returns the current state in the fulfillment workflow.
func (o *Order) Status() Status { return o.status }

// ShippingAddress returns the buyer's delivery address.
func (o *Order) ShippingAddress() string { return o.shippingAddress }

// ShippingProvider returns the provider recorded at shipment, nil until shipped.
func (o *Order) ShippingProvider() *string { return o.shippingProvider }

// TrackingNumber returns the tracking number recorded at shipment, nil until shipped.
func (o *Order) TrackingNumber() *string { return o.trackingNumber }

// PaymentProofURL returns the uploaded proof image URL, nil until submitted.
func (o *Order) PaymentProofURL() *string { return o.paymentProofURL }

// Reason returns the rejection or cancellation reason, nil unless rejected or cancelled.
func (o *Order) Reason() *string { return o.reason }

// MoneyReceivedAt returns when the seller confirmed receipt of funds, nil until then.
func (o *Order) MoneyReceivedAt() *time.Time { return o.moneyReceivedAt }

// DeliveredAt returns when the buyer acknowledged delivery, nil until delivered.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// RowVersion returns the version after any in-memory mutations. This is the
// value persisted on a successful write and returned to the caller.
func (o *Order) RowVersion() kernel.RowVersion { return o.rowVersion }

// PersistedRowVersion returns the version the aggregate was loaded with.
// Repositories scope their conditional updates by this value.
func (o *Order) PersistedRowVersion() kernel.RowVersion { return o.persistedVersion }

// Confirm accepts the order on behalf of the seller. Bank-transfer orders move
// to AwaitingOfflinePayment; cash-on-delivery orders move straight to
// PendingShipment.
func (o *Order) Confirm(actor kernel.Actor) error {
	if err := o.requireSeller(actor, "confirm the order"); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm(o.paymentKind)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.bumpVersion()
	return nil
}

// Reject declines the order on behalf of the seller, recording a required
// reason of at most MaxReasonLength characters.
func (o *Order) Reject(actor kernel.Actor, reason string) error {
	if err := o.requireSeller(actor, "reject the order"); err != nil {
		return err
	}
	if err := validateReason(reason); err != nil {
		return err
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = &reason
	o.bumpVersion()
	return nil
}

// SubmitPaymentProof records the buyer's uploaded payment proof image.
// The status is unchanged, but the write still advances the row version.
func (o *Order) SubmitPaymentProof(actor kernel.Actor, proofURL string) error {
	if err := o.requireBuyer(actor, "submit a payment proof"); err != nil {
		return err
	}
	if proofURL == "" {
		return errs.NewValueIsRequiredError("payment proof")
	}
	if err := o.status.ValidateSubmitProof(); err != nil {
		return err
	}

	o.paymentProofURL = &proofURL
	o.bumpVersion()
	return nil
}

// ConfirmMoneyReceived records that the seller received the buyer's funds.
// For an order awaiting offline payment this releases it to PendingShipment;
// for a delivered cash-on-delivery order it only stamps the receipt time.
func (o *Order) ConfirmMoneyReceived(actor kernel.Actor) error {
	if err := o.requireSeller(actor, "confirm money received"); err != nil {
		return err
	}

	switch {
	case o.status == AwaitingOfflinePayment:
		o.status = PendingShipment
	case o.status == Delivered && o.paymentKind == CashOnDelivery:
		// status unchanged; the receipt timestamp is the record
	default:
		return errs.NewInvalidStateError("confirm money received", o.status.String())
	}

	now := time.Now().UTC()
	o.moneyReceivedAt = &now
	o.bumpVersion()
	return nil
}

// Ship marks the order as handed to a shipping provider, recording the
// required provider name and tracking number.
func (o *Order) Ship(actor kernel.Actor, provider, trackingNumber string) error {
	if err := o.requireSeller(actor, "ship the order"); err != nil {
		return err
	}
	if provider == "" {
		return errs.NewValueIsRequiredError("shippingProvider")
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shippingProvider = &provider
	o.trackingNumber = &trackingNumber
	o.bumpVersion()
	return nil
}

// Deliver records the buyer's acknowledgement of receipt.
func (o *Order) Deliver(actor kernel.Actor) error {
	if err := o.requireBuyer(actor, "confirm delivery"); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.deliveredAt = &now
	o.bumpVersion()
	return nil
}

// Cancel withdraws the order pre-shipment on behalf of either party,
// recording a required reason of at most MaxReasonLength characters.
func (o *Order) Cancel(actor kernel.Actor, reason string) error {
	if err := o.requireParty(actor, "cancel the order"); err != nil {
		return err
	}
	if err := validateReason(reason); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = &reason
	o.bumpVersion()
	return nil
}

// Finalize moves a delivered order into the terminal Completed state.
// Invoked by the finalization job (or on review), not by a request actor.
func (o *Order) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.bumpVersion()
	return nil
}

func (o *Order) requireSeller(actor kernel.Actor, operation string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.ID() != o.sellerID {
		return errs.NewForbiddenError("only the seller may " + operation)
	}
	return nil
}

func (o *Order) requireBuyer(actor kernel.Actor, operation string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.ID() != o.buyerID {
		return errs.NewForbiddenError("only the buyer may " + operation)
	}
	return nil
}

func (o *Order) requireParty(actor kernel.Actor, operation string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.ID() != o.buyerID && actor.ID() != o.sellerID {
		return errs.NewForbiddenError("only the buyer or the seller may " + operation)
	}
	return nil
}

// bumpVersion derives the next version from the persisted one, so repeated
// in-memory mutations before a save still advance the stored version by one.
func (o *Order) bumpVersion() {
	o.rowVersion = o.persistedVersion.Next()
}

func validateReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if len(reason) > MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, MaxReasonLength)
	}
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, sellerID int64) error {
	if buyerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("buyer id", fmt.Errorf("%d is not greater than 0", buyerID))
	}
	if sellerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("seller id", fmt.Errorf("%d is not greater than 0", sellerID))
	}
	if buyerID == sellerID {
		return errs.NewValueIsInvalidErrorWithCause("buyer id",
			fmt.Errorf("buyer %d cannot order their own listing", buyerID))
	}
	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setListingID(listingID int64) error {
	if listingID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("listing id", fmt.Errorf("%d is not greater than 0", listingID))
	}
	o.listingID = listingID
	return nil
}

func (o *Order) setTotalAmount(totalAmount int64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total amount", fmt.Errorf("%d is not greater than 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setPaymentKind(kind PaymentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.paymentKind = kind
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = address
	return nil
}
