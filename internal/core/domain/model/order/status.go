package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct checkout and fulfillment workflow.
//
// State transitions:
//
//	Open ──checkout──> Received ──confirm──> Confirmed ──acknowledge payment──> Paid
//	                                                                             │
//	                                          Delivered / Returned / Failed <────┘
//	                                                  (finalize, caller picks one)
//
// Items are mutable only while the order is Open. Delivered, Returned and
// Failed are terminal: no transition leaves them. The machine never moves
// backward and never skips a state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status. Items may be added, edited, and removed,
	// and the order may be deleted, only while it is Open.
	Open

	// Received indicates the order went through checkout: its item set is
	// frozen and its total has been computed. Checkout is the sole producer
	// of this status.
	Received

	// Confirmed indicates the order was accepted for preparation.
	Confirmed

	// Paid indicates payment has been acknowledged for the order.
	Paid

	// Delivered is the terminal status for an order handed to the customer.
	Delivered

	// Returned is the terminal status for an order sent back by the customer.
	Returned

	// Failed is the terminal status for an order that could not be fulfilled.
	Failed
)

// ErrInvalidStateTransition is the unwrap target for every rejected transition.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// ErrTerminalStatusRequired is returned when Finalize is invoked without an
// explicit terminal status. The machine records the caller's decision; it
// never infers an outcome.
var ErrTerminalStatusRequired = errors.New("finalize requires an explicit terminal status")

// InvalidStateTransitionError reports a transition command attempted from a
// status that does not allow it. It names both the command and the current
// status so the caller can see exactly what was rejected.
type InvalidStateTransitionError struct {
	Command string
	From    Status
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidStateTransition, e.Command, e.From)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

func newInvalidStateTransition(command string, from Status) error {
	return &InvalidStateTransitionError{Command: command, From: from}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Received:  "Received",
		Confirmed: "Confirmed",
		Paid:      "Paid",
		Delivered: "Delivered",
		Returned:  "Returned",
		Failed:    "Failed",
	}
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Open || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsOpen reports whether items may still be mutated.
func (s Status) IsOpen() bool {
	return s == Open
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Failed
}

// Checkout transitions Open to Received. Checkout is one-way: a second call
// fails because Received does not allow it.
func (s Status) Checkout() (Status, error) {
	if s != Open {
		return Unknown, newInvalidStateTransition("Checkout", s)
	}
	return Received, nil
}

// Confirm transitions Received to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Received {
		return Unknown, newInvalidStateTransition("Confirm", s)
	}
	return Confirmed, nil
}

// AcknowledgePayment transitions Confirmed to Paid.
func (s Status) AcknowledgePayment() (Status, error) {
	if s != Confirmed {
		return Unknown, newInvalidStateTransition("AcknowledgePayment", s)
	}
	return Paid, nil
}

// Finalize transitions Paid to the caller-supplied terminal status.
// The target must be Delivered, Returned, or Failed; the zero value yields
// ErrTerminalStatusRequired because the outcome is the caller's to state,
// not the machine's to guess.
func (s Status) Finalize(target Status) (Status, error) {
	if target == Unknown {
		return Unknown, ErrTerminalStatusRequired
	}
	if !target.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s is not a terminal status", ErrTerminalStatusRequired, target)
	}
	if s != Paid {
		return Unknown, newInvalidStateTransition("Finalize", s)
	}
	return target, nil
}
