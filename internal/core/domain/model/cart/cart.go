package cart

import (
	"errors"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	ErrCartIsEmpty          = errors.New("cart is empty")
)

// DefaultTTL is how long an untouched cart survives.
const DefaultTTL = 24 * time.Hour

// Cart is the aggregate root for a session's pending order. Every mutation
// extends the expiry.
type Cart struct {
	id        kernel.UUID
	sessionID string
	lines     []*Line
	createdAt time.Time
	updatedAt time.Time
	expiresAt time.Time
	ttl       time.Duration

	isConstructed bool
}

func NewCart(id kernel.UUID, sessionID string, now time.Time, ttl time.Duration) (*Cart, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cart{
		createdAt:     now,
		updatedAt:     now,
		expiresAt:     now.Add(ttl),
		ttl:           ttl,
		isConstructed: true,
	}
	if err := errors.Join(c.setID(id), c.setSessionID(sessionID)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCart rebuilds a cart from persistence.
func RestoreCart(
	id kernel.UUID,
	sessionID string,
	lines []*Line,
	createdAt, updatedAt, expiresAt time.Time,
	ttl time.Duration,
) (*Cart, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cart{
		lines:         lines,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		expiresAt:     expiresAt,
		ttl:           ttl,
		isConstructed: true,
	}
	if err := errors.Join(c.setID(id), c.setSessionID(sessionID)); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

func (c *Cart) SessionID() string {
	return c.sessionID
}

func (c *Cart) Lines() []*Line {
	return slices.Clone(c.lines)
}

func (c *Cart) Line(id kernel.UUID) (*Line, error) {
	i := c.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("cart line", id.String())
	}
	return c.lines[i], nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Cart) ExpiresAt() time.Time {
	return c.expiresAt
}

func (c *Cart) TTL() time.Duration {
	return c.ttl
}

func (c *Cart) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

func (c *Cart) AddLine(line *Line, now time.Time) error {
	if line == nil {
		return errs.NewValueIsRequiredError("cart line")
	}
	if c.indexOf(line.ID()) >= 0 {
		return errs.NewValueIsInvalidError("cart line " + line.ID().String() + " already exists")
	}
	c.lines = append(c.lines, line)
	c.touch(now)
	return nil
}

// ReplaceLine swaps the line with the same id, keeping its position.
func (c *Cart) ReplaceLine(line *Line, now time.Time) error {
	if line == nil {
		return errs.NewValueIsRequiredError("cart line")
	}
	i := c.indexOf(line.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", line.ID().String())
	}
	c.lines[i] = line
	c.touch(now)
	return nil
}

func (c *Cart) RemoveLine(id kernel.UUID, now time.Time) error {
	i := c.indexOf(id)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", id.String())
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	c.touch(now)
	return nil
}

func (c *Cart) Clear(now time.Time) {
	c.lines = nil
	c.touch(now)
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.pricing.Subtotal)
	}
	return sum
}

func (c *Cart) TaxAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.pricing.TaxAmount)
	}
	return sum
}

func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.pricing.Total)
	}
	return sum
}

func (c *Cart) indexOf(id kernel.UUID) int {
	return slices.IndexFunc(c.lines, func(l *Line) bool { return l.id.IsEqual(id) })
}

func (c *Cart) touch(now time.Time) {
	c.updatedAt = now
	c.expiresAt = now.Add(c.ttl)
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return errs.NewValueIsRequiredError("session id")
	}
	c.sessionID = sessionID
	return nil
}
