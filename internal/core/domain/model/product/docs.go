// Package product contains the catalog entry entity. The catalog is the
// read-only source of product identity, SKU, and price that order line items
// snapshot at creation time.
package product
