package http

import (
	"time"

	"bookmarket/internal/core/application/usecases/queries"
	"bookmarket/internal/core/domain/model/listing"
	"bookmarket/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the checkout payload. Seller and total are derived
// from the listing server-side and never accepted from the client.
type CreateOrderRequest struct {
	ListingID       int64  `json:"listing_id"`
	PaymentKind     string `json:"payment_kind"`
	ShippingAddress string `json:"shipping_address"`
}

// TransitionRequest carries the row version for transitions without extra fields.
type TransitionRequest struct {
	RowVersion string `json:"row_version"`
}

// ReasonedTransitionRequest carries a mandatory reason alongside the row version.
// Used for order rejection, order cancellation, and listing rejection.
type ReasonedTransitionRequest struct {
	Reason     string `json:"reason"`
	RowVersion string `json:"row_version"`
}

// ShipOrderRequest carries the shipment details for the ship transition.
type ShipOrderRequest struct {
	Provider       string `json:"provider"`
	TrackingNumber string `json:"tracking_number"`
	RowVersion     string `json:"row_version"`
}

// OrderResponse is the canonical order representation. RowVersion is the
// opaque token the client must present on its next mutation.
type OrderResponse struct {
	ID               int64      `json:"id"`
	BuyerID          int64      `json:"buyer_id"`
	SellerID         int64      `json:"seller_id"`
	ListingID        int64      `json:"listing_id"`
	TotalAmount      int64      `json:"total_amount"`
	PaymentKind      string     `json:"payment_kind"`
	Status           string     `json:"status"`
	ShippingAddress  string     `json:"shipping_address"`
	ShippingProvider *string    `json:"shipping_provider,omitempty"`
	TrackingNumber   *string    `json:"tracking_number,omitempty"`
	PaymentProofURL  *string    `json:"payment_proof_url,omitempty"`
	Reason           *string    `json:"reason,omitempty"`
	MoneyReceivedAt  *time.Time `json:"money_received_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	RowVersion       string     `json:"row_version"`
}

// ListingResponse is the listing representation returned by moderation endpoints.
type ListingResponse struct {
	ID              int64   `json:"id"`
	SellerID        int64   `json:"seller_id"`
	BookID          int64   `json:"book_id"`
	Price           int64   `json:"price"`
	StatusID        int64   `json:"status_id"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	RowVersion      string  `json:"row_version"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:               aggregate.ID(),
		BuyerID:          aggregate.BuyerID(),
		SellerID:         aggregate.SellerID(),
		ListingID:        aggregate.ListingID(),
		TotalAmount:      aggregate.TotalAmount(),
		PaymentKind:      aggregate.PaymentKind().String(),
		Status:           aggregate.Status().String(),
		ShippingAddress:  aggregate.ShippingAddress(),
		ShippingProvider: aggregate.ShippingProvider(),
		TrackingNumber:   aggregate.TrackingNumber(),
		PaymentProofURL:  aggregate.PaymentProofURL(),
		Reason:           aggregate.Reason(),
		MoneyReceivedAt:  aggregate.MoneyReceivedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CreatedAt:        aggregate.CreatedAt(),
		RowVersion:       aggregate.RowVersion().Token(),
	}
}

func orderResponseFromView(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:               view.ID,
		BuyerID:          view.BuyerID,
		SellerID:         view.SellerID,
		ListingID:        view.ListingID,
		TotalAmount:      view.TotalAmount,
		PaymentKind:      view.PaymentKind,
		Status:           view.Status,
		ShippingAddress:  view.ShippingAddress,
		ShippingProvider: view.ShippingProvider,
		TrackingNumber:   view.TrackingNumber,
		PaymentProofURL:  view.PaymentProofURL,
		Reason:           view.Reason,
		MoneyReceivedAt:  view.MoneyReceivedAt,
		DeliveredAt:      view.DeliveredAt,
		CreatedAt:        view.CreatedAt,
		RowVersion:       view.RowVersion,
	}
}

func listingResponseFromAggregate(aggregate *listing.Listing) ListingResponse {
	return ListingResponse{
		ID:              aggregate.ID(),
		SellerID:        aggregate.SellerID(),
		BookID:          aggregate.BookID(),
		Price:           aggregate.Price(),
		StatusID:        aggregate.StatusID(),
		RejectionReason: aggregate.RejectionReason(),
		RowVersion:      aggregate.RowVersion().Token(),
	}
}
