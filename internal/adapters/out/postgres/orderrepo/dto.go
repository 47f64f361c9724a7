// Package orderrepo persists order aggregates with gorm. Scalar fields and the
// totals get their own columns; lines, taxes, customer and the audit trail are
// stored as JSON documents since they are only ever read together with the
// order.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Number          string            `gorm:"size:32;uniqueIndex"`
	Status          int               `gorm:"index"`
	Lines           []LineDTO         `gorm:"serializer:json"`
	Taxes           []TaxChargeDTO    `gorm:"serializer:json"`
	Subtotal        decimal.Decimal   `gorm:"type:numeric(12,2)"`
	TaxAmount       decimal.Decimal   `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal   `gorm:"type:numeric(12,2)"`
	Customer        *CustomerDTO      `gorm:"serializer:json"`
	Note            string
	PrepTimeMinutes int
	History         []StatusChangeDTO `gorm:"serializer:json"`
	Version         int               `gorm:"not null;default:1"`
	CreatedAt       time.Time         `gorm:"index;autoCreateTime:false"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type LineDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Options   []OptionDTO     `json:"options,omitempty"`
	Note      string          `json:"note,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
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

type CustomerDTO struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type StatusChangeDTO struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Actor string    `json:"actor,omitempty"`
	Notes string    `json:"notes,omitempty"`
	At    time.Time `json:"at"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	lines := make([]LineDTO, 0, len(s.Lines))
	for _, l := range s.Lines {
		options := make([]OptionDTO, 0, len(l.Options))
		for _, opt := range l.Options {
			options = append(options, OptionDTO{ID: opt.ID, Name: opt.Name, Group: opt.Group, Price: opt.Price})
		}
		lines = append(lines, LineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			BasePrice: l.BasePrice,
			Quantity:  l.Quantity,
			Options:   options,
			Note:      l.Note,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
			TaxAmount: l.TaxAmount,
			Total:     l.Total,
		})
	}

	taxes := make([]TaxChargeDTO, 0, len(s.Taxes))
	for _, t := range s.Taxes {
		taxes = append(taxes, TaxChargeDTO{
			Name:      t.Name,
			Kind:      string(t.Kind),
			Value:     t.Value,
			Inclusive: t.Inclusive,
			Amount:    t.Amount,
		})
	}

	history := make([]StatusChangeDTO, 0, len(s.History))
	for _, h := range s.History {
		history = append(history, StatusChangeDTO{
			From:  h.From.String(),
			To:    h.To.String(),
			Actor: h.Actor,
			Notes: h.Notes,
			At:    h.At,
		})
	}

	var customer *CustomerDTO
	if s.Customer != nil {
		customer = &CustomerDTO{Name: s.Customer.Name, Phone: s.Customer.Phone, Email: s.Customer.Email}
	}

	return OrderDTO{
		ID:              s.ID.Bytes(),
		Number:          s.Number,
		Status:          int(s.Status),
		Lines:           lines,
		Taxes:           taxes,
		Subtotal:        s.Subtotal,
		TaxAmount:       s.TaxAmount,
		Total:           s.Total,
		Customer:        customer,
		Note:            s.Note,
		PrepTimeMinutes: s.PrepTimeMinutes,
		History:         history,
		Version:         s.Version,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		options := make([]catalog.ChosenOption, 0, len(l.Options))
		for _, opt := range l.Options {
			options = append(options, catalog.ChosenOption{ID: opt.ID, Name: opt.Name, Group: opt.Group, Price: opt.Price})
		}
		lines = append(lines, order.Line{
			ProductID: l.ProductID,
			Name:      l.Name,
			BasePrice: l.BasePrice,
			Quantity:  l.Quantity,
			Options:   options,
			Note:      l.Note,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
			TaxAmount: l.TaxAmount,
			Total:     l.Total,
		})
	}

	taxes := make([]catalog.TaxCharge, 0, len(dto.Taxes))
	for _, t := range dto.Taxes {
		taxes = append(taxes, catalog.TaxCharge{
			Tax: catalog.Tax{
				Name:      t.Name,
				Kind:      catalog.TaxKind(t.Kind),
				Value:     t.Value,
				Inclusive: t.Inclusive,
			},
			Amount: t.Amount,
		})
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, h := range dto.History {
		from, fromErr := order.ParseStatus(h.From)
		if fromErr != nil {
			return nil, fromErr
		}
		to, toErr := order.ParseStatus(h.To)
		if toErr != nil {
			return nil, toErr
		}
		history = append(history, order.StatusChange{From: from, To: to, Actor: h.Actor, Notes: h.Notes, At: h.At})
	}

	var customer *order.Customer
	if dto.Customer != nil {
		customer = &order.Customer{Name: dto.Customer.Name, Phone: dto.Customer.Phone, Email: dto.Customer.Email}
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		Number:          dto.Number,
		Status:          order.Status(dto.Status),
		Lines:           lines,
		Taxes:           taxes,
		Subtotal:        dto.Subtotal,
		TaxAmount:       dto.TaxAmount,
		Total:           dto.Total,
		Customer:        customer,
		Note:            dto.Note,
		PrepTimeMinutes: dto.PrepTimeMinutes,
		History:         history,
		Version:         dto.Version,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
