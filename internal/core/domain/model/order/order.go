package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents one customer purchase, in progress or completed. It is the
// aggregate root that carries the order through checkout and fulfillment.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and customer reference, both immutable
//   - Total is 0.00 until checkout; afterwards it equals the sum of the item
//     price snapshots at checkout time and never changes again
//   - Items may be mutated, and the order deleted, only while the status is Open
//   - Status transitions follow the Status state machine; there is no way back
//     and no way to skip a state
//
// The struct uses private fields so the invariants can only be touched through
// validated methods.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	status        Status
	paymentStatus PaymentStatus
	total         kernel.Money
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order for the given customer. The order starts Open
// with no items, a pending payment status, and a zero total.
func NewOrder(id kernel.UUID, customerID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Open,
		paymentStatus: PaymentPending,
		total:         kernel.ZeroMoney(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields are validated;
// use this only with data that previously passed through the aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	total kernel.Money,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setPaymentStatus(paymentStatus),
		order.setTotal(total),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who owns the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Total returns the order total. It is 0.00 until checkout executes.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modified timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Touch bumps the last-modified timestamp. Item mutations call this so the
// owning order reflects the change.
func (o *Order) Touch() {
	o.updatedAt = time.Now().UTC()
}

// EnsureOpen verifies the order still accepts item mutations and deletion.
// Returns an OperationNotSupportedError naming the rejected operation when the
// status already left Open.
func (o *Order) EnsureOpen(operation string) error {
	if !o.status.IsOpen() {
		return errs.NewOperationNotSupportedErrorWithCause(operation,
			fmt.Errorf("order %s is %s, not %s", o.id, o.status, Open))
	}
	return nil
}

// Checkout freezes the item set and records the computed total, moving the
// order from Open to Received. The total must be the exact sum of the item
// price snapshots; computing it is the caller's job, recording it exactly once
// is this method's. A second checkout fails on the status guard.
func (o *Order) Checkout(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Checkout()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.total = total
	o.Touch()
	return nil
}

// Confirm moves the order from Received to Confirmed.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Touch()
	return nil
}

// AcknowledgePayment moves the order from Confirmed to Paid and marks the
// payment as confirmed.
func (o *Order) AcknowledgePayment() error {
	newStatus, err := o.status.AcknowledgePayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentConfirmed
	o.Touch()
	return nil
}

// Finalize moves the order from Paid to the caller-supplied terminal status
// (Delivered, Returned, or Failed).
func (o *Order) Finalize(target Status) error {
	newStatus, err := o.status.Finalize(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Touch()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	if o.status.IsOpen() && !total.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("order %s is %s and must carry a zero total", o.id, o.status))
	}
	o.total = total
	return nil
}
