// Package errs holds the error types shared by the storefront layers.
//
// Generic errors (not found, invalid, out of range, required, stale version)
// carry the parameter they are about and unwrap to a package sentinel, so
// callers match with errors.Is and inspect details with errors.As.
//
// Domain errors cover the ordering workflow itself:
//   - StructureIsInvalidError marks catalog data that cannot form a
//     customization tree
//   - IllegalTransitionError marks an order status change the lifecycle
//     does not allow
//   - TransportError classifies a failed call to the order authority as
//     timeout, connectivity or rejection
//
// The HTTP adapter maps each sentinel to one response code; the sync
// coordinator reads TransportError.Retryable to decide what to tell staff.
package errs
