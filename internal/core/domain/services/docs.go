// Package services provides the domain services of the storefront: pricing a
// configured product, computing taxes, quoting a cart line and turning a cart
// into an order. They hold no state and never perform I/O.
//
// The package includes:
//   - PriceCalculator: (base price + selected option prices) * quantity
//   - TaxCalculator: per-line tax breakdown
//   - Quoter: price, taxes and selection validation of one configured product
//   - OrderFactory: builds an order from a cart snapshot
package services
