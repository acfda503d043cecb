package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand closes out a Paid order. The caller must name the
// terminal outcome explicitly: Delivered, Returned, or Failed. There is no
// default outcome, so a missing target is a construction error rather than
// a silent fallback.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to finalize an order with the
// given terminal status.
func NewFinalizeOrderCommand(orderID kernel.UUID, targetStatus order.Status) (FinalizeOrderCommand, error) {
	cmd := FinalizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FinalizeOrderCommand{}, err
	}

	if err := cmd.setTargetStatus(targetStatus); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finalize.
func (c FinalizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the terminal status the order will end in.
func (c FinalizeOrderCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *FinalizeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *FinalizeOrderCommand) setTargetStatus(targetStatus order.Status) error {
	if !targetStatus.IsTerminal() {
		return order.ErrTerminalStatusRequired
	}
	c.targetStatus = targetStatus
	return nil
}
