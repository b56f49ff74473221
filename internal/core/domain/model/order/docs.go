// Package order provides domain entities and business logic for customer order
// management. It implements the Order aggregate root with line item ownership,
// total derivation, and lifecycle state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns items, the total, and the lifecycle
//   - Item: A line item snapshot with immutable product identity and unit price
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentMethod: The customer's chosen way to pay, recorded on the order
//
// Key business rules:
//   - The total always equals the sum of price times quantity over the items
//   - Items can only be added, updated, or removed in CREATED status
//   - An order keeps at least one item once placed; the last item is never removable
//   - Setting an item quantity to zero or less removes that item
//   - Payment is assigned in PLACED status and is required before paying
//   - Status follows CREATED -> PLACED -> PAID -> SHIPPED -> DELIVERED, with
//     CANCELLED reachable from CREATED, PLACED, and PAID only
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
