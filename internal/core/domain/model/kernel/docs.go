// Package kernel contains shared value objects used across domain aggregates.
//
// The package includes:
//   - OrderNumber: the immutable natural key identifying an order externally
//   - Money: a non-negative monetary amount with exact decimal arithmetic
//
// All value objects are immutable, validate themselves on construction, and
// expose a Validate method that rejects zero values which bypassed their
// constructors.
package kernel
