package order

import (
	"fmt"

	"bookmarket/internal/pkg/errs"
)

// PaymentKind classifies how the buyer settles an order. It decides which
// branch the seller's confirmation takes: bank transfers go through the
// offline-payment stage, cash-on-delivery orders move straight to shipment.
type PaymentKind int

const (
	// PaymentKindUnknown represents an invalid or undefined payment kind.
	PaymentKindUnknown PaymentKind = iota

	// CashOnDelivery settles at hand-over; no upfront payment stage.
	CashOnDelivery

	// BankTransfer settles upfront; the buyer uploads a payment proof which
	// the seller confirms before shipment.
	BankTransfer
)

func getPaymentKindStrings() map[PaymentKind]string {
	return map[PaymentKind]string{
		PaymentKindUnknown: "Unknown",
		CashOnDelivery:     "CashOnDelivery",
		BankTransfer:       "BankTransfer",
	}
}

func getValidPaymentKindStrings() map[PaymentKind]string {
	//nolint:exhaustive // PaymentKindUnknown is intentionally excluded as it's invalid
	return map[PaymentKind]string{
		CashOnDelivery: "CashOnDelivery",
		BankTransfer:   "BankTransfer",
	}
}

// PaymentKindFromString parses a payment method name as carried in requests.
func PaymentKindFromString(s string) (PaymentKind, error) {
	for kind, str := range getValidPaymentKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return PaymentKindUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentKind value is valid.
func (k PaymentKind) Validate() error {
	if _, ok := getValidPaymentKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", k))
	}
	return nil
}

// String returns the human-readable name of the payment kind.
func (k PaymentKind) String() string {
	if str, ok := getPaymentKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
