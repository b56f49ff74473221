package order

import (
	"microshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Placed ──> Paid ──> Shipped ──> Delivered
//	   │           │         │
//	   └───────────┴─────────┴──> Cancelled
//
// Shipped, Delivered, and Cancelled are terminal for cancellation purposes:
// once an order has shipped, it can no longer be cancelled.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first composed.
	// Items can only be added, updated, or removed while in this status.
	Created

	// Placed indicates the customer has committed to the order.
	// Payment can only be assigned while in this status.
	Placed

	// Paid indicates the order has been paid for.
	Paid

	// Shipped indicates the order has left fulfillment. Terminal for this core:
	// it is recorded but never produced by an aggregate operation.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before shipping. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "CREATED",
		Placed:    "PLACED",
		Paid:      "PAID",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Placed:    "PLACED",
		Paid:      "PAID",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other unmapped values are invalid.
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Created), int(Cancelled)))
	}
	return nil
}

// String returns the name of the status as it appears on the wire and in
// persistence. Implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Place transitions the status to Placed.
//
// Valid transitions:
//   - Created -> Placed
//
// Returns (0, error) if the order is not in Created status.
func (s Status) Place() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidStateError("place", s.String())
	}

	return Placed, nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Placed -> Paid
//
// Returns (0, error) if the order is not in Placed status.
// The aggregate additionally requires an assigned payment before paying.
func (s Status) Pay() (Status, error) {
	if s != Placed {
		return 0, errs.NewInvalidStateError("pay", s.String())
	}

	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Placed -> Cancelled
//   - Paid -> Cancelled
//
// Shipped, Delivered, and already Cancelled orders cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Placed && s != Paid {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}

	return Cancelled, nil
}

// AllowsItemMutation reports whether items may be added, updated, or removed.
// Item mutation is permitted only while the order is in Created status.
func (s Status) AllowsItemMutation() bool {
	return s == Created
}
