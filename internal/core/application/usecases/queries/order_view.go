// Package queries contains read-only operations over the storage model.
// Query handlers bypass the aggregates and read projection rows directly,
// following the read side of the CQRS split.
package queries

import (
	"time"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
)

// OrderView is the read model of an order as exposed to its parties.
// Status and payment kind are carried as their wire names, and the row
// version as the opaque token a caller must present on the next mutation.
type OrderView struct {
	ID               int64
	BuyerID          int64
	SellerID         int64
	ListingID        int64
	TotalAmount      int64
	PaymentKind      string
	Status           string
	ShippingAddress  string
	ShippingProvider *string
	TrackingNumber   *string
	PaymentProofURL  *string
	Reason           *string
	MoneyReceivedAt  *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	RowVersion       string
}

// orderViewColumns is the select list matching scanOrderView's scan order.
const orderViewColumns = `
	id,
	buyer_id,
	seller_id,
	listing_id,
	total_amount,
	payment_kind,
	status,
	shipping_address,
	shipping_provider,
	tracking_number,
	payment_proof_url,
	reason,
	money_received_at,
	delivered_at,
	created_at,
	row_version
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (OrderView, error) {
	var (
		view           OrderView
		paymentKind    int
		status         int
		versionCounter uint64
	)

	if err := row.Scan(
		&view.ID,
		&view.BuyerID,
		&view.SellerID,
		&view.ListingID,
		&view.TotalAmount,
		&paymentKind,
		&status,
		&view.ShippingAddress,
		&view.ShippingProvider,
		&view.TrackingNumber,
		&view.PaymentProofURL,
		&view.Reason,
		&view.MoneyReceivedAt,
		&view.DeliveredAt,
		&view.CreatedAt,
		&versionCounter,
	); err != nil {
		return OrderView{}, err
	}

	view.PaymentKind = order.PaymentKind(paymentKind).String()
	view.Status = order.Status(status).String()
	view.RowVersion = kernel.RowVersionFromCounter(versionCounter).Token()

	return view, nil
}
