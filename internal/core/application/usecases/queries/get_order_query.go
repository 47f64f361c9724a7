package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks an order up by its id or by its number, so customers
// can track an order with the number printed on the receipt.
type GetOrderQuery struct {
	id     *kernel.UUID
	number string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(idOrNumber string) (GetOrderQuery, error) {
	idOrNumber = strings.TrimSpace(idOrNumber)
	if idOrNumber == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id or number")
	}

	q := GetOrderQuery{guard: guard.NewConstructorGuard()}
	if id, err := kernel.UUIDFromString(idOrNumber); err == nil {
		q.id = &id
	} else {
		q.number = strings.ToUpper(idOrNumber)
	}
	return q, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the order id when the query was built from one.
func (q GetOrderQuery) ID() (kernel.UUID, bool) {
	if q.id == nil {
		return kernel.UUID{}, false
	}
	return *q.id, true
}

func (q GetOrderQuery) Number() string {
	return q.number
}
