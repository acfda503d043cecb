package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAcknowledgePaymentCommandIsNotConstructed = errors.New(
	"AcknowledgePaymentCommand must be created via NewAcknowledgePaymentCommand constructor",
)

// AcknowledgePaymentCommand records that payment arrived for a Confirmed
// order, moving it to Paid.
type AcknowledgePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcknowledgePaymentCommand creates a command to acknowledge payment.
func NewAcknowledgePaymentCommand(orderID kernel.UUID) (AcknowledgePaymentCommand, error) {
	cmd := AcknowledgePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AcknowledgePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcknowledgePaymentCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c AcknowledgePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AcknowledgePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
