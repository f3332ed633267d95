package order_test

import (
	"fmt"
	"testing"

	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.PendingSellerConfirmation,
		order.AwaitingOfflinePayment,
		order.PendingShipment,
		order.Shipped,
		order.Delivered,
		order.Completed,
		order.RejectedBySeller,
		order.Cancelled,
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.PendingSellerConfirmation))
		assert.Equal(t, 2, int(order.AwaitingOfflinePayment))
		assert.Equal(t, 3, int(order.PendingShipment))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Completed))
		assert.Equal(t, 7, int(order.RejectedBySeller))
		assert.Equal(t, 8, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all defined statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(9), order.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		assert.Equal(t, "PendingSellerConfirmation", order.PendingSellerConfirmation.String())
		assert.Equal(t, "AwaitingOfflinePayment", order.AwaitingOfflinePayment.String())
		assert.Equal(t, "PendingShipment", order.PendingShipment.String())
		assert.Equal(t, "Shipped", order.Shipped.String())
		assert.Equal(t, "Delivered", order.Delivered.String())
		assert.Equal(t, "Completed", order.Completed.String())
		assert.Equal(t, "RejectedBySeller", order.RejectedBySeller.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Completed:        true,
		order.RejectedBySeller: true,
		order.Cancelled:        true,
	}

	for _, status := range allStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), "status %s", status.String())
	}
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("bank transfer moves to AwaitingOfflinePayment", func(t *testing.T) {
		newStatus, err := order.PendingSellerConfirmation.Confirm(order.BankTransfer)

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingOfflinePayment, newStatus)
	})

	t.Run("cash on delivery moves to PendingShipment", func(t *testing.T) {
		newStatus, err := order.PendingSellerConfirmation.Confirm(order.CashOnDelivery)

		require.NoError(t, err)
		assert.Equal(t, order.PendingShipment, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.PendingSellerConfirmation {
				continue
			}
			_, err := status.Confirm(order.BankTransfer)

			require.Error(t, err, "status %s", status.String())
			assert.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})

	t.Run("should reject an invalid payment kind", func(t *testing.T) {
		_, err := order.PendingSellerConfirmation.Confirm(order.PaymentKindUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Reject(t *testing.T) {
	t.Run("should allow rejection while pending confirmation", func(t *testing.T) {
		newStatus, err := order.PendingSellerConfirmation.Reject()

		require.NoError(t, err)
		assert.Equal(t, order.RejectedBySeller, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.PendingSellerConfirmation {
				continue
			}
			_, err := status.Reject()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", status.String())
		}
	})
}

func TestStatus_ValidateSubmitProof(t *testing.T) {
	t.Run("should allow while awaiting offline payment", func(t *testing.T) {
		require.NoError(t, order.AwaitingOfflinePayment.ValidateSubmitProof())
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.AwaitingOfflinePayment {
				continue
			}
			require.ErrorIs(t, status.ValidateSubmitProof(), errs.ErrInvalidState, "status %s", status.String())
		}
	})
}

func TestStatus_Ship(t *testing.T) {
	t.Run("should allow from PendingShipment", func(t *testing.T) {
		newStatus, err := order.PendingShipment.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.PendingShipment {
				continue
			}
			_, err := status.Ship()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", status.String())
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should allow from Shipped", func(t *testing.T) {
		newStatus, err := order.Shipped.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.Shipped {
				continue
			}
			_, err := status.Deliver()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", status.String())
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow from pre-shipment states", func(t *testing.T) {
		for _, status := range []order.Status{
			order.PendingSellerConfirmation,
			order.AwaitingOfflinePayment,
			order.PendingShipment,
		} {
			newStatus, err := status.Cancel()

			require.NoError(t, err, "status %s", status.String())
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("should reject once shipped or terminal", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Shipped, order.Delivered, order.Completed, order.RejectedBySeller, order.Cancelled,
		} {
			_, err := status.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", status.String())
		}
	})
}

func TestStatus_Finalize(t *testing.T) {
	t.Run("should allow from Delivered", func(t *testing.T) {
		newStatus, err := order.Delivered.Finalize()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.Delivered {
				continue
			}
			_, err := status.Finalize()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", status.String())
		}
	})
}

func TestPaymentKind(t *testing.T) {
	t.Run("should parse valid payment methods", func(t *testing.T) {
		kind, err := order.PaymentKindFromString("BankTransfer")
		require.NoError(t, err)
		assert.Equal(t, order.BankTransfer, kind)

		kind, err = order.PaymentKindFromString("CashOnDelivery")
		require.NoError(t, err)
		assert.Equal(t, order.CashOnDelivery, kind)
	})

	t.Run("should reject unknown payment methods", func(t *testing.T) {
		_, err := order.PaymentKindFromString("Barter")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should validate only defined kinds", func(t *testing.T) {
		require.NoError(t, order.CashOnDelivery.Validate())
		require.NoError(t, order.BankTransfer.Validate())
		require.Error(t, order.PaymentKindUnknown.Validate())
		require.Error(t, order.PaymentKind(9).Validate())
	})
}
