package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentStatus tracks whether payment has been acknowledged for an order.
// It is advisory bookkeeping next to the main Status machine: the workflow
// flips it to PaymentConfirmed when AcknowledgePayment succeeds.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of every order.
	PaymentPending

	// PaymentConfirmed indicates payment was acknowledged.
	PaymentConfirmed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "Unknown",
		PaymentPending:   "Pending",
		PaymentConfirmed: "Confirmed",
	}
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the PaymentStatus value is one of the defined statuses.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentConfirmed {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
