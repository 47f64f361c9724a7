// Package kernel holds the value objects shared by every storefront aggregate:
// identifiers and money helpers.
package kernel
