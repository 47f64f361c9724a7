// Package catalog contains the menu item model: base price, quantity rule,
// taxes and the customization tree a customer configures.
package catalog
