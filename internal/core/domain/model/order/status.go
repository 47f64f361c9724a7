package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// Only staff-facing mutations change it; customers observe it.
//
// State transitions:
//
//	Received ──> Preparing ──> Ready ──> Completed
//	    │            │           │
//	    └────────────┴───────────┴──────> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status, entered when an order is created from a cart.
	Received

	// Preparing means the kitchen started working on the order.
	Preparing

	// Ready means the order waits for pickup.
	Ready

	// Completed means the order was handed over. Terminal.
	Completed

	// Cancelled means the order will not be fulfilled. Terminal.
	Cancelled
)

// transitions is the lifecycle table. A status missing from the table has no
// outgoing transitions.
var transitions = map[Status][]Status{
	Received:  {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {Completed, Cancelled},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Received:  "RECEIVED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no display label
	return map[Status]string{
		Received:  "Order Received",
		Preparing: "Preparing",
		Ready:     "Ready for Pickup",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Received, Preparing, Ready, Completed, Cancelled}
}

// ActiveStatuses returns the statuses the kitchen still has to work on.
func ActiveStatuses() []Status {
	return []Status{Received, Preparing, Ready}
}

// ParseStatus converts a wire name such as "PREPARING" into a Status.
// Matching is case-insensitive.
//
// Returns:
//   - the parsed Status on success
//   - (Unknown, error) if the name does not denote a valid status
func ParseStatus(name string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range Statuses() {
		if getStatusStrings()[s] == upper {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the customer-facing name, e.g. "Ready for Pickup".
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether the kitchen still has to act on the order.
func (s Status) IsActive() bool {
	return s == Received || s == Preparing || s == Ready
}

// AllowedTransitions returns the statuses reachable in one step.
// Terminal and invalid statuses return an empty slice.
//
// Example:
//
//	order.Preparing.AllowedTransitions() // [READY CANCELLED]
//	order.Completed.AllowedTransitions() // []
func (s Status) AllowedTransitions() []Status {
	return append([]Status{}, transitions[s]...)
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the lifecycle allows it.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (Unknown, *errs.IllegalTransitionError) otherwise, including any
//     transition out of Completed or Cancelled
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewIllegalTransitionError(s, next)
	}
	return next, nil
}

// MarshalText encodes the wire name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a wire name.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
