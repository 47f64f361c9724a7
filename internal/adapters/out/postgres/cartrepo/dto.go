// Package cartrepo persists session carts with gorm. Every cart line is a row
// of cart_lines owned by its cart; removing the cart removes its lines.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting cart aggregates.
type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	SessionID  string        `gorm:"type:varchar(128);not null;uniqueIndex"`
	Lines      []CartLineDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TTLSeconds int64         `gorm:"not null"`
	CreatedAt  time.Time     `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime:false"`
	ExpiresAt  time.Time     `gorm:"index"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents one configured product of a cart.
type CartLineDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position        int             `gorm:"not null"`
	ProductID       string          `gorm:"type:varchar(128);not null"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	BasePrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity        decimal.Decimal `gorm:"type:numeric(12,3)"`
	Selection       []string        `gorm:"serializer:json"`
	Options         []OptionDTO     `gorm:"serializer:json"`
	Note            string
	PrepTimeMinutes int
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Taxes           []TaxChargeDTO  `gorm:"serializer:json"`
	TaxAmount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

type OptionDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Group string          `json:"group"`
	Price decimal.Decimal `json:"price"`
}

type TaxChargeDTO struct {
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Value     decimal.Decimal `json:"value"`
	Inclusive bool            `json:"inclusive"`
	Amount    decimal.Decimal `json:"amount"`
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(c *cart.Cart) CartDTO {
	cartID := c.ID().Bytes()
	lines := make([]CartLineDTO, 0, len(c.Lines()))

	for i, l := range c.Lines() {
		p := l.Pricing()

		options := make([]OptionDTO, 0, len(l.Options()))
		for _, opt := range l.Options() {
			options = append(options, OptionDTO{ID: opt.ID, Name: opt.Name, Group: opt.Group, Price: opt.Price})
		}

		taxes := make([]TaxChargeDTO, 0, len(p.Taxes))
		for _, t := range p.Taxes {
			taxes = append(taxes, TaxChargeDTO{
				Name:      t.Name,
				Kind:      string(t.Kind),
				Value:     t.Value,
				Inclusive: t.Inclusive,
				Amount:    t.Amount,
			})
		}

		lines = append(lines, CartLineDTO{
			ID:              l.ID().Bytes(),
			CartID:          cartID,
			Position:        i,
			ProductID:       l.ProductID(),
			ProductName:     l.ProductName(),
			BasePrice:       l.BasePrice(),
			Quantity:        l.Quantity(),
			Selection:       l.Selection().IDs(),
			Options:         options,
			Note:            l.Note(),
			PrepTimeMinutes: l.PrepTimeMinutes(),
			UnitPrice:       p.UnitPrice,
			Subtotal:        p.Subtotal,
			Taxes:           taxes,
			TaxAmount:       p.TaxAmount,
			Total:           p.Total,
		})
	}

	return CartDTO{
		ID:         cartID,
		SessionID:  c.SessionID(),
		Lines:      lines,
		TTLSeconds: int64(c.TTL() / time.Second),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
		ExpiresAt:  c.ExpiresAt(),
	}
}

// toDomain converts a database DTO to a cart aggregate using RestoreCart.
// Lines are expected in position order.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lineID, idErr := kernel.UUIDFromBytes(l.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		options := make([]catalog.ChosenOption, 0, len(l.Options))
		for _, opt := range l.Options {
			options = append(options, catalog.ChosenOption{ID: opt.ID, Name: opt.Name, Group: opt.Group, Price: opt.Price})
		}

		taxes := make([]catalog.TaxCharge, 0, len(l.Taxes))
		for _, t := range l.Taxes {
			taxes = append(taxes, catalog.TaxCharge{
				Tax:    catalog.Tax{Name: t.Name, Kind: catalog.TaxKind(t.Kind), Value: t.Value, Inclusive: t.Inclusive},
				Amount: t.Amount,
			})
		}

		line, lineErr := cart.RestoreLine(
			lineID,
			l.ProductID,
			l.ProductName,
			l.BasePrice,
			l.Quantity,
			customization.NewSelection(l.Selection...),
			options,
			l.Note,
			l.PrepTimeMinutes,
			cart.Pricing{
				UnitPrice: l.UnitPrice,
				Subtotal:  l.Subtotal,
				Taxes:     taxes,
				TaxAmount: l.TaxAmount,
				Total:     l.Total,
			},
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(
		id,
		dto.SessionID,
		lines,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ExpiresAt,
		time.Duration(dto.TTLSeconds)*time.Second,
	)
}
