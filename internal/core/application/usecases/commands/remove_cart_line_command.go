package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand drops one line from the cart, or every line when
// the line id is omitted.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lineID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand removes a single line.
func NewRemoveCartLineCommand(sessionID string, lineID kernel.UUID) (RemoveCartLineCommand, error) {
	if err := lineID.Validate(); err != nil {
		return RemoveCartLineCommand{}, err
	}
	return newRemoveCartLineCommand(sessionID, &lineID)
}

// NewClearCartCommand removes every line of the cart.
func NewClearCartCommand(sessionID string) (RemoveCartLineCommand, error) {
	return newRemoveCartLineCommand(sessionID, nil)
}

func newRemoveCartLineCommand(sessionID string, lineID *kernel.UUID) (RemoveCartLineCommand, error) {
	if strings.TrimSpace(sessionID) == "" {
		return RemoveCartLineCommand{}, ErrSessionIsRequired
	}
	return RemoveCartLineCommand{
		sessionID: sessionID,
		lineID:    lineID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

func (c RemoveCartLineCommand) SessionID() string {
	return c.sessionID
}

// LineID returns the line to remove and false for a full clear.
func (c RemoveCartLineCommand) LineID() (kernel.UUID, bool) {
	if c.lineID == nil {
		return kernel.UUID{}, false
	}
	return *c.lineID, true
}
