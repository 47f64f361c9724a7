package realtime

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// MutationState is the outcome of a staff status change.
//
// State transitions:
//
//	Pending → Confirmed   (authority accepted the change)
//	Pending → RolledBack  (authority or transport failed; local state restored)
type MutationState int

const (
	MutationPending MutationState = iota
	MutationConfirmed
	MutationRolledBack
)

func (s MutationState) String() string {
	switch s {
	case MutationConfirmed:
		return "confirmed"
	case MutationRolledBack:
		return "rolled-back"
	default:
		return "pending"
	}
}

// Mutation records one optimistic status change.
type Mutation struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	From      order.Status
	To        order.Status
	Notes     string
	State     MutationState
	Err       error
	StartedAt time.Time
	SettledAt time.Time
}

// IsSettled reports whether the authority has answered.
func (m Mutation) IsSettled() bool {
	return m.State != MutationPending
}
