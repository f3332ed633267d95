package listing

import (
	"errors"
	"fmt"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing instance was not created
	// through NewListing or RestoreListing.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing or RestoreListing")
)

// MaxReasonLength bounds moderation rejection reasons.
const MaxReasonLength = 500

// StatusDomain is the domain key under which listing statuses are registered
// in the status lookup table.
const StatusDomain = "Listing"

// Status codes within StatusDomain. The numeric ids behind these codes live in
// the status table and are resolved at runtime; a failed resolution is a
// server misconfiguration (StatusNotFound), not a user error.
const (
	StatusCodePending  = "Pending"
	StatusCodeActive   = "Active"
	StatusCodeRejected = "Rejected"
)

// Listing is a seller's offer to sell or exchange a specific book. New
// listings await admin moderation: Pending moves to Active on approval or to
// Rejected (with a reason) on rejection. Unlike Order, listing states are
// identified by status-table ids rather than a compile-time enum, so the
// transition methods take the resolved ids as arguments.
//
// Listings share the Order aggregate's concurrency contract: every mutation
// advances the row version, and stale writers are rejected.
type Listing struct {
	id       int64
	sellerID int64
	bookID   int64
	price    int64

	statusID        int64
	rejectionReason *string

	rowVersion       kernel.RowVersion
	persistedVersion kernel.RowVersion

	isConstructed bool
}

// NewListing creates a listing pending moderation with the initial row version.
func NewListing(id, sellerID, bookID, price, pendingStatusID int64) (*Listing, error) {
	l := &Listing{
		rowVersion:       kernel.InitialRowVersion(),
		persistedVersion: kernel.InitialRowVersion(),
		isConstructed:    true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setSellerID(sellerID),
		l.setBookID(bookID),
		l.setPrice(price),
		l.setStatusID(pendingStatusID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreListingParams carries the persisted state needed to reconstruct a
// listing aggregate from storage.
type RestoreListingParams struct {
	ID              int64
	SellerID        int64
	BookID          int64
	Price           int64
	StatusID        int64
	RejectionReason *string
	RowVersion      kernel.RowVersion
}

// RestoreListing reconstructs a listing aggregate from persistence.
func RestoreListing(params RestoreListingParams) (*Listing, error) {
	if err := params.RowVersion.Validate(); err != nil {
		return nil, err
	}

	l := &Listing{
		rejectionReason:  params.RejectionReason,
		rowVersion:       params.RowVersion,
		persistedVersion: params.RowVersion,
		isConstructed:    true,
	}

	if err := errors.Join(
		l.setID(params.ID),
		l.setSellerID(params.SellerID),
		l.setBookID(params.BookID),
		l.setPrice(params.Price),
		l.setStatusID(params.StatusID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() int64 { return l.id }

// SellerID returns the owning seller's user id.
func (l *Listing) SellerID() int64 { return l.sellerID }

// BookID returns the offered book reference.
func (l *Listing) BookID() int64 { return l.bookID }

// Price returns the asking price in minor currency units. Checkout derives
// the order total from it.
func (l *Listing) Price() int64 { return l.price }

// StatusID returns the current status-table id.
func (l *Listing) StatusID() int64 { return l.statusID }

// RejectionReason returns the moderation rejection reason, nil unless rejected.
func (l *Listing) RejectionReason() *string { return l.rejectionReason }

// RowVersion returns the version after any in-memory mutations.
func (l *Listing) RowVersion() kernel.RowVersion { return l.rowVersion }

// PersistedRowVersion returns the version the aggregate was loaded with.
func (l *Listing) PersistedRowVersion() kernel.RowVersion { return l.persistedVersion }

// Approve transitions a pending listing to active. Only admins may approve,
// and only from the Pending status; both status ids must be pre-resolved from
// the status table by the caller.
func (l *Listing) Approve(actor kernel.Actor, pendingStatusID, activeStatusID int64) error {
	if err := l.requireAdmin(actor, "approve the listing"); err != nil {
		return err
	}
	if err := l.requireStatus(pendingStatusID, "approve"); err != nil {
		return err
	}

	l.statusID = activeStatusID
	l.bumpVersion()
	return nil
}

// Reject transitions a pending listing to rejected, recording a required
// reason of at most MaxReasonLength characters.
func (l *Listing) Reject(actor kernel.Actor, pendingStatusID, rejectedStatusID int64, reason string) error {
	if err := l.requireAdmin(actor, "reject the listing"); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if len(reason) > MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, MaxReasonLength)
	}
	if err := l.requireStatus(pendingStatusID, "reject"); err != nil {
		return err
	}

	l.statusID = rejectedStatusID
	l.rejectionReason = &reason
	l.bumpVersion()
	return nil
}

func (l *Listing) requireAdmin(actor kernel.Actor, operation string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError("only an admin may " + operation)
	}
	return nil
}

func (l *Listing) requireStatus(expectedStatusID int64, operation string) error {
	if l.statusID != expectedStatusID {
		return errs.NewInvalidStateError(operation, fmt.Sprintf("status %d", l.statusID))
	}
	return nil
}

func (l *Listing) bumpVersion() {
	l.rowVersion = l.persistedVersion.Next()
}

func (l *Listing) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("listing id", fmt.Errorf("%d is not greater than 0", id))
	}
	l.id = id
	return nil
}

func (l *Listing) setSellerID(sellerID int64) error {
	if sellerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("seller id", fmt.Errorf("%d is not greater than 0", sellerID))
	}
	l.sellerID = sellerID
	return nil
}

func (l *Listing) setBookID(bookID int64) error {
	if bookID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("book id", fmt.Errorf("%d is not greater than 0", bookID))
	}
	l.bookID = bookID
	return nil
}

func (l *Listing) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	l.price = price
	return nil
}

func (l *Listing) setStatusID(statusID int64) error {
	if statusID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("status id", fmt.Errorf("%d is not greater than 0", statusID))
	}
	l.statusID = statusID
	return nil
}
