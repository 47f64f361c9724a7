// Package order contains the order aggregate and its fulfillment lifecycle.
//
// An Order is created in Received from a cart snapshot. Afterwards only its
// status (and the audit trail recording each change) may change, through
// Order.ChangeStatus, which enforces the transition table of Status.
package order
