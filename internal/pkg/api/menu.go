package api

import (
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string               `json:"id"`
	Slug            string               `json:"slug"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	BasePrice       decimal.Decimal      `json:"basePrice"`
	QuantityType    catalog.QuantityType `json:"quantityType"`
	Unit            string               `json:"unit,omitempty"`
	Quantity        QuantityRule         `json:"quantity"`
	Available       bool                 `json:"isAvailable"`
	PrepTimeMinutes int                  `json:"preparationTime"`
	Taxes           []ProductTax         `json:"taxes"`
	Layout          string               `json:"customizationLayout"`
	Groups          []CustomizationGroup `json:"customizationGroups"`
}

type QuantityRule struct {
	Min  decimal.Decimal  `json:"min"`
	Max  *decimal.Decimal `json:"max,omitempty"`
	Step decimal.Decimal  `json:"step"`
}

type ProductTax struct {
	Name      string          `json:"name"`
	Kind      catalog.TaxKind `json:"kind"`
	Value     decimal.Decimal `json:"value"`
	Inclusive bool            `json:"inclusive"`
}

// CustomizationGroup is one node of the constraint tree. Groups nest.
type CustomizationGroup struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Label       string                `json:"label"`
	Min         int                   `json:"minSelections"`
	Max         int                   `json:"maxSelections"`
	Required    bool                  `json:"isRequired"`
	Exclusive   bool                  `json:"exclusive"`
	Options     []CustomizationOption `json:"options"`
	Groups      []CustomizationGroup  `json:"groups,omitempty"`
}

type CustomizationOption struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	PriceLabel  string          `json:"priceLabel,omitempty"`
}

// QuoteRequest is the body of POST /menu/items/{id}/quote.
type QuoteRequest struct {
	Quantity       decimal.Decimal `json:"quantity"`
	Customizations []string        `json:"customizations"`
}

type Quote struct {
	MenuItemID    string          `json:"menuItemId"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Taxes         []Tax           `json:"taxes"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	DisplayTotal  string          `json:"displayTotal"`
	Valid         bool            `json:"valid"`
	GroupErrors   []GroupError    `json:"groupErrors"`
	UnknownIDs    []string        `json:"unknownCustomizations,omitempty"`
	QuantityError string          `json:"quantityError,omitempty"`
}

type GroupError struct {
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
	Message   string `json:"message"`
}

// FromGroups renders a constraint tree level for the wire.
func FromGroups(groups []*customization.Group, priceLabel func(decimal.Decimal) string) []CustomizationGroup {
	out := make([]CustomizationGroup, 0, len(groups))
	for _, g := range groups {
		rule := g.Rule()
		options := make([]CustomizationOption, 0, len(g.Options()))
		for _, opt := range g.Options() {
			o := CustomizationOption{
				ID:          opt.ID(),
				Name:        opt.Name(),
				Description: opt.Description(),
				Price:       opt.Price(),
			}
			if !opt.Price().IsZero() && priceLabel != nil {
				o.PriceLabel = priceLabel(opt.Price())
			}
			options = append(options, o)
		}
		out = append(out, CustomizationGroup{
			ID:          g.ID(),
			Name:        g.Name(),
			Description: g.Description(),
			Label:       g.Label(),
			Min:         rule.Min,
			Max:         rule.Max,
			Required:    rule.Required,
			Exclusive:   rule.IsExclusive(),
			Options:     options,
			Groups:      FromGroups(g.Groups(), priceLabel),
		})
	}
	return out
}

// FromValidation renders the per-group validation messages.
func FromValidation(v customization.Validation) []GroupError {
	out := make([]GroupError, 0, len(v.Errors))
	for _, e := range v.Errors {
		out = append(out, GroupError{GroupID: e.GroupID, GroupName: e.GroupName, Message: e.Message})
	}
	return out
}
