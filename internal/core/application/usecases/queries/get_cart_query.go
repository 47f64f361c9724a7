package queries

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

type GetCartQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	if strings.TrimSpace(sessionID) == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("session id")
	}
	return GetCartQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) SessionID() string {
	return q.sessionID
}
