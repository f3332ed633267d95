package order_test

import (
	"strings"
	"testing"
	"time"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	buyerID  int64 = 10
	sellerID int64 = 20
)

func buyer(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(buyerID, kernel.RoleUser)
	require.NoError(t, err)
	return actor
}

func seller(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(sellerID, kernel.RoleUser)
	require.NoError(t, err)
	return actor
}

func stranger(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(999, kernel.RoleUser)
	require.NoError(t, err)
	return actor
}

func newTestOrder(t *testing.T, kind order.PaymentKind) *order.Order {
	t.Helper()
	o, err := order.NewOrder(42, buyerID, sellerID, 7, 2500, kind, "12 Baker St")
	require.NoError(t, err)
	return o
}

func restoreInStatus(t *testing.T, status order.Status, kind order.PaymentKind) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              42,
		BuyerID:         buyerID,
		SellerID:        sellerID,
		ListingID:       7,
		TotalAmount:     2500,
		PaymentKind:     kind,
		Status:          status,
		ShippingAddress: "12 Baker St",
		CreatedAt:       time.Now().UTC(),
		RowVersion:      kernel.RowVersionFromCounter(3),
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order with initial version", func(t *testing.T) {
		o := newTestOrder(t, order.BankTransfer)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.PendingSellerConfirmation, o.Status())
		assert.Equal(t, uint64(0), o.RowVersion().Counter())
		assert.Nil(t, o.ShippingProvider())
		assert.Nil(t, o.PaymentProofURL())
		assert.Nil(t, o.Reason())
	})

	t.Run("should reject invalid construction parameters", func(t *testing.T) {
		cases := []struct {
			name string
			fn   func() (*order.Order, error)
		}{
			{"non-positive id", func() (*order.Order, error) {
				return order.NewOrder(0, buyerID, sellerID, 7, 2500, order.BankTransfer, "addr")
			}},
			{"buyer equals seller", func() (*order.Order, error) {
				return order.NewOrder(42, buyerID, buyerID, 7, 2500, order.BankTransfer, "addr")
			}},
			{"non-positive amount", func() (*order.Order, error) {
				return order.NewOrder(42, buyerID, sellerID, 7, 0, order.BankTransfer, "addr")
			}},
			{"unknown payment kind", func() (*order.Order, error) {
				return order.NewOrder(42, buyerID, sellerID, 7, 2500, order.PaymentKindUnknown, "addr")
			}},
			{"empty shipping address", func() (*order.Order, error) {
				return order.NewOrder(42, buyerID, sellerID, 7, 2500, order.BankTransfer, "")
			}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.fn()
				require.Error(t, err)
			})
		}
	})

	t.Run("zero-value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("seller confirms bank transfer into AwaitingOfflinePayment with a new version", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingSellerConfirmation, order.BankTransfer)
		before := o.RowVersion()

		err := o.Confirm(seller(t))

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingOfflinePayment, o.Status())
		assert.False(t, o.RowVersion().IsEqual(before))
	})

	t.Run("seller confirms cash on delivery into PendingShipment", func(t *testing.T) {
		o := newTestOrder(t, order.CashOnDelivery)

		require.NoError(t, o.Confirm(seller(t)))
		assert.Equal(t, order.PendingShipment, o.Status())
	})

	t.Run("buyer and strangers are forbidden regardless of state", func(t *testing.T) {
		for _, actor := range []kernel.Actor{buyer(t), stranger(t)} {
			o := newTestOrder(t, order.BankTransfer)

			err := o.Confirm(actor)

			require.ErrorIs(t, err, errs.ErrForbidden)
			assert.Equal(t, order.PendingSellerConfirmation, o.Status())
		}
	})

	t.Run("seller gets InvalidState outside PendingSellerConfirmation", func(t *testing.T) {
		o := restoreInStatus(t, order.Shipped, order.BankTransfer)
		before := o.RowVersion()

		err := o.Confirm(seller(t))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Shipped, o.Status())
		assert.True(t, o.RowVersion().IsEqual(before), "failed transition must not touch the version")
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("seller rejects with a reason", func(t *testing.T) {
		o := newTestOrder(t, order.BankTransfer)

		err := o.Reject(seller(t), "book no longer available")

		require.NoError(t, err)
		assert.Equal(t, order.RejectedBySeller, o.Status())
		require.NotNil(t, o.Reason())
		assert.Equal(t, "book no longer available", *o.Reason())
	})

	t.Run("reason is required", func(t *testing.T) {
		o := newTestOrder(t, order.BankTransfer)

		require.ErrorIs(t, o.Reject(seller(t), ""), errs.ErrValueIsRequired)
		assert.Equal(t, order.PendingSellerConfirmation, o.Status())
	})

	t.Run("reason longer than 500 characters is rejected", func(t *testing.T) {
		o := newTestOrder(t, order.BankTransfer)

		err := o.Reject(seller(t), strings.Repeat("x", order.MaxReasonLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.PendingSellerConfirmation, o.Status())
	})

	t.Run("only the seller may reject", func(t *testing.T) {
		o := newTestOrder(t, order.BankTransfer)
		require.ErrorIs(t, o.Reject(buyer(t), "changed my mind"), errs.ErrForbidden)
	})

	t.Run("reject outside PendingSellerConfirmation is InvalidState", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)
		require.ErrorIs(t, o.Reject(seller(t), "too late"), errs.ErrInvalidState)
	})
}

func TestOrder_SubmitPaymentProof(t *testing.T) {
	t.Run("buyer attaches proof without changing status", func(t *testing.T) {
		o := restoreInStatus(t, order.AwaitingOfflinePayment, order.BankTransfer)
		before := o.RowVersion()

		err := o.SubmitPaymentProof(buyer(t), "/uploads/proofs/abc.jpg")

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingOfflinePayment, o.Status())
		require.NotNil(t, o.PaymentProofURL())
		assert.Equal(t, "/uploads/proofs/abc.jpg", *o.PaymentProofURL())
		assert.False(t, o.RowVersion().IsEqual(before), "proof submission is a write and must advance the version")
	})

	t.Run("missing proof is a validation failure", func(t *testing.T) {
		o := restoreInStatus(t, order.AwaitingOfflinePayment, order.BankTransfer)
		require.ErrorIs(t, o.SubmitPaymentProof(buyer(t), ""), errs.ErrValueIsRequired)
	})

	t.Run("only the buyer may submit proof", func(t *testing.T) {
		o := restoreInStatus(t, order.AwaitingOfflinePayment, order.BankTransfer)
		require.ErrorIs(t, o.SubmitPaymentProof(seller(t), "/p.jpg"), errs.ErrForbidden)
	})

	t.Run("proof outside AwaitingOfflinePayment is InvalidState", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)
		require.ErrorIs(t, o.SubmitPaymentProof(buyer(t), "/p.jpg"), errs.ErrInvalidState)
	})
}

func TestOrder_ConfirmMoneyReceived(t *testing.T) {
	t.Run("releases an awaiting-payment order to PendingShipment", func(t *testing.T) {
		o := restoreInStatus(t, order.AwaitingOfflinePayment, order.BankTransfer)

		err := o.ConfirmMoneyReceived(seller(t))

		require.NoError(t, err)
		assert.Equal(t, order.PendingShipment, o.Status())
		assert.NotNil(t, o.MoneyReceivedAt())
	})

	t.Run("stamps receipt on a delivered cash-on-delivery order without a transition", func(t *testing.T) {
		o := restoreInStatus(t, order.Delivered, order.CashOnDelivery)

		err := o.ConfirmMoneyReceived(seller(t))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.NotNil(t, o.MoneyReceivedAt())
	})

	t.Run("delivered bank-transfer order is InvalidState", func(t *testing.T) {
		o := restoreInStatus(t, order.Delivered, order.BankTransfer)
		require.ErrorIs(t, o.ConfirmMoneyReceived(seller(t)), errs.ErrInvalidState)
	})

	t.Run("only the seller may confirm money received", func(t *testing.T) {
		o := restoreInStatus(t, order.AwaitingOfflinePayment, order.BankTransfer)
		require.ErrorIs(t, o.ConfirmMoneyReceived(buyer(t)), errs.ErrForbidden)
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("seller ships with provider and tracking number", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)

		err := o.Ship(seller(t), "DHL", "JD014600003828")

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		require.NotNil(t, o.ShippingProvider())
		require.NotNil(t, o.TrackingNumber())
		assert.Equal(t, "DHL", *o.ShippingProvider())
		assert.Equal(t, "JD014600003828", *o.TrackingNumber())
	})

	t.Run("missing provider or tracking number leaves state unchanged", func(t *testing.T) {
		cases := []struct{ provider, tracking string }{
			{"", "JD014600003828"},
			{"DHL", ""},
			{"", ""},
		}
		for _, tc := range cases {
			o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)
			before := o.RowVersion()

			err := o.Ship(seller(t), tc.provider, tc.tracking)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Equal(t, order.PendingShipment, o.Status())
			assert.True(t, o.RowVersion().IsEqual(before))
			assert.Nil(t, o.ShippingProvider())
		}
	})

	t.Run("only the seller may ship", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)
		require.ErrorIs(t, o.Ship(buyer(t), "DHL", "X"), errs.ErrForbidden)
	})

	t.Run("ship outside PendingShipment is InvalidState", func(t *testing.T) {
		o := restoreInStatus(t, order.Shipped, order.BankTransfer)
		require.ErrorIs(t, o.Ship(seller(t), "DHL", "X"), errs.ErrInvalidState)
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("buyer confirms delivery of a shipped order", func(t *testing.T) {
		o := restoreInStatus(t, order.Shipped, order.BankTransfer)

		err := o.Deliver(buyer(t))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.NotNil(t, o.DeliveredAt())
	})

	t.Run("only the buyer may confirm delivery", func(t *testing.T) {
		o := restoreInStatus(t, order.Shipped, order.BankTransfer)
		require.ErrorIs(t, o.Deliver(seller(t)), errs.ErrForbidden)
	})

	t.Run("deliver outside Shipped is InvalidState", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)
		require.ErrorIs(t, o.Deliver(buyer(t)), errs.ErrInvalidState)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("either party may cancel pre-shipment with a reason", func(t *testing.T) {
		for _, actor := range []kernel.Actor{buyer(t), seller(t)} {
			o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)

			err := o.Cancel(actor, "agreed to call it off")

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, o.Status())
			require.NotNil(t, o.Reason())
		}
	})

	t.Run("strangers are forbidden", func(t *testing.T) {
		o := newTestOrder(t, order.BankTransfer)
		require.ErrorIs(t, o.Cancel(stranger(t), "nope"), errs.ErrForbidden)
	})

	t.Run("oversized reason is a validation failure", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingShipment, order.BankTransfer)

		err := o.Cancel(buyer(t), strings.Repeat("r", order.MaxReasonLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.PendingShipment, o.Status())
	})

	t.Run("cancel after shipment is InvalidState", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipped, order.Delivered, order.Completed, order.Cancelled} {
			o := restoreInStatus(t, status, order.BankTransfer)
			require.ErrorIs(t, o.Cancel(buyer(t), "too late"), errs.ErrInvalidState, "status %s", status.String())
		}
	})
}

func TestOrder_Finalize(t *testing.T) {
	t.Run("delivered order finalizes into Completed", func(t *testing.T) {
		o := restoreInStatus(t, order.Delivered, order.BankTransfer)

		require.NoError(t, o.Finalize())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("finalize is idempotent in failure", func(t *testing.T) {
		o := restoreInStatus(t, order.Delivered, order.BankTransfer)
		require.NoError(t, o.Finalize())

		require.ErrorIs(t, o.Finalize(), errs.ErrInvalidState)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_VersionHandling(t *testing.T) {
	t.Run("successful transition advances exactly one step past the persisted version", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingSellerConfirmation, order.BankTransfer)

		require.NoError(t, o.Confirm(seller(t)))

		assert.Equal(t, o.PersistedRowVersion().Counter()+1, o.RowVersion().Counter())
	})

	t.Run("persisted version is untouched by in-memory mutation", func(t *testing.T) {
		o := restoreInStatus(t, order.PendingSellerConfirmation, order.BankTransfer)
		persisted := o.PersistedRowVersion()

		require.NoError(t, o.Confirm(seller(t)))

		assert.True(t, o.PersistedRowVersion().IsEqual(persisted))
	})
}
