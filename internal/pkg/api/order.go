package api

import (
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                  kernel.UUID     `json:"id"`
	OrderNumber         string          `json:"orderNumber"`
	Status              order.Status    `json:"status"`
	StatusLabel         string          `json:"statusLabel"`
	Customer            *Customer       `json:"customer,omitempty"`
	Items               []OrderItem     `json:"items"`
	Taxes               []Tax           `json:"taxes"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxAmount           decimal.Decimal `json:"taxAmount"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	EstimatedPrepTime   int             `json:"estimatedPrepTime"`
	StatusHistory       []StatusChange  `json:"statusHistory"`
	QuickActions        []QuickAction   `json:"quickActions"`
	Version             int             `json:"version"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type Customer struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type OrderItem struct {
	MenuItemID          string          `json:"menuItemId"`
	ItemName            string          `json:"itemName"`
	ItemBasePrice       decimal.Decimal `json:"itemBasePrice"`
	Quantity            decimal.Decimal `json:"quantity"`
	Customizations      []Customization `json:"customizations"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	ItemSubtotal        decimal.Decimal `json:"itemSubtotal"`
	ItemTaxAmount       decimal.Decimal `json:"itemTaxAmount"`
	ItemTotal           decimal.Decimal `json:"itemTotal"`
}

// Customization is a chosen option as recorded on a cart or order line.
type Customization struct {
	CustomizationID string          `json:"customizationId"`
	Name            string          `json:"name"`
	Group           string          `json:"group"`
	Price           decimal.Decimal `json:"price"`
}

type Tax struct {
	TaxName          string          `json:"taxName"`
	TaxType          catalog.TaxKind `json:"taxType"`
	TaxValue         decimal.Decimal `json:"taxValue"`
	Inclusive        bool            `json:"inclusive"`
	CalculatedAmount decimal.Decimal `json:"calculatedAmount"`
}

type StatusChange struct {
	From      order.Status `json:"from"`
	To        order.Status `json:"to"`
	ChangedBy string       `json:"changedBy"`
	Notes     string       `json:"notes,omitempty"`
	ChangedAt time.Time    `json:"changedAt"`
}

type QuickAction struct {
	Target order.Status `json:"target"`
	Label  string       `json:"label"`
}

// ChangeStatusRequest is the body of PATCH /kitchen/orders/{id}/status.
type ChangeStatusRequest struct {
	Status order.Status `json:"status"`
	Notes  string       `json:"notes,omitempty"`
}

// FromOrder renders an order snapshot for the wire.
func FromOrder(s order.Snapshot) Order {
	items := make([]OrderItem, 0, len(s.Lines))
	for _, l := range s.Lines {
		items = append(items, OrderItem{
			MenuItemID:          l.ProductID,
			ItemName:            l.Name,
			ItemBasePrice:       l.BasePrice,
			Quantity:            l.Quantity,
			Customizations:      FromChosen(l.Options),
			SpecialInstructions: l.Note,
			UnitPrice:           l.UnitPrice,
			ItemSubtotal:        l.Subtotal,
			ItemTaxAmount:       l.TaxAmount,
			ItemTotal:           l.Total,
		})
	}

	history := make([]StatusChange, 0, len(s.History))
	for _, h := range s.History {
		history = append(history, StatusChange{From: h.From, To: h.To, ChangedBy: h.Actor, Notes: h.Notes, ChangedAt: h.At})
	}

	actions := make([]QuickAction, 0, len(s.Status.AllowedTransitions()))
	for _, a := range s.Status.QuickActions() {
		actions = append(actions, QuickAction{Target: a.Target, Label: a.Label})
	}

	o := Order{
		ID:                  s.ID,
		OrderNumber:         s.Number,
		Status:              s.Status,
		StatusLabel:         s.Status.Label(),
		Items:               items,
		Taxes:               FromTaxCharges(s.Taxes),
		Subtotal:            s.Subtotal,
		TaxAmount:           s.TaxAmount,
		TotalAmount:         s.Total,
		SpecialInstructions: s.Note,
		EstimatedPrepTime:   s.PrepTimeMinutes,
		StatusHistory:       history,
		QuickActions:        actions,
		Version:             s.Version,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if s.Customer != nil {
		o.Customer = &Customer{Name: s.Customer.Name, Phone: s.Customer.Phone, Email: s.Customer.Email}
	}
	return o
}

// Snapshot converts a wire order back into the domain form.
func (o Order) Snapshot() order.Snapshot {
	lines := make([]order.Line, 0, len(o.Items))
	for _, it := range o.Items {
		options := make([]catalog.ChosenOption, 0, len(it.Customizations))
		for _, c := range it.Customizations {
			options = append(options, catalog.ChosenOption{ID: c.CustomizationID, Name: c.Name, Group: c.Group, Price: c.Price})
		}
		lines = append(lines, order.Line{
			ProductID: it.MenuItemID,
			Name:      it.ItemName,
			BasePrice: it.ItemBasePrice,
			Quantity:  it.Quantity,
			Options:   options,
			Note:      it.SpecialInstructions,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.ItemSubtotal,
			TaxAmount: it.ItemTaxAmount,
			Total:     it.ItemTotal,
		})
	}

	taxes := make([]catalog.TaxCharge, 0, len(o.Taxes))
	for _, t := range o.Taxes {
		taxes = append(taxes, catalog.TaxCharge{
			Tax:    catalog.Tax{Name: t.TaxName, Kind: t.TaxType, Value: t.TaxValue, Inclusive: t.Inclusive},
			Amount: t.CalculatedAmount,
		})
	}

	history := make([]order.StatusChange, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, order.StatusChange{From: h.From, To: h.To, Actor: h.ChangedBy, Notes: h.Notes, At: h.ChangedAt})
	}

	s := order.Snapshot{
		ID:              o.ID,
		Number:          o.OrderNumber,
		Status:          o.Status,
		Lines:           lines,
		Taxes:           taxes,
		Subtotal:        o.Subtotal,
		TaxAmount:       o.TaxAmount,
		Total:           o.TotalAmount,
		Note:            o.SpecialInstructions,
		PrepTimeMinutes: o.EstimatedPrepTime,
		History:         history,
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Customer != nil {
		s.Customer = &order.Customer{Name: o.Customer.Name, Phone: o.Customer.Phone, Email: o.Customer.Email}
	}
	return s
}

func FromChosen(options []catalog.ChosenOption) []Customization {
	out := make([]Customization, 0, len(options))
	for _, opt := range options {
		out = append(out, Customization{CustomizationID: opt.ID, Name: opt.Name, Group: opt.Group, Price: opt.Price})
	}
	return out
}

func FromTaxCharges(charges []catalog.TaxCharge) []Tax {
	out := make([]Tax, 0, len(charges))
	for _, t := range charges {
		out = append(out, Tax{
			TaxName:          t.Name,
			TaxType:          t.Kind,
			TaxValue:         t.Value,
			Inclusive:        t.Inclusive,
			CalculatedAmount: t.Amount,
		})
	}
	return out
}
