package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	SessionID   string          `json:"sessionId"`
	Items       []CartItem      `json:"items"`
	ItemCount   int             `json:"itemCount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Total       decimal.Decimal `json:"total"`
	CanCheckout bool            `json:"canCheckout"`
	ExpiresAt   *time.Time      `json:"expiresAt,omitempty"`
}

type CartItem struct {
	ID                  string          `json:"id"`
	MenuItemID          string          `json:"menuItemId"`
	Name                string          `json:"name"`
	BasePrice           decimal.Decimal `json:"basePrice"`
	Quantity            decimal.Decimal `json:"quantity"`
	Customizations      []Customization `json:"customizations"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	ItemSubtotal        decimal.Decimal `json:"itemSubtotal"`
	Taxes               []Tax           `json:"taxes"`
	ItemTaxAmount       decimal.Decimal `json:"itemTaxAmount"`
	ItemTotal           decimal.Decimal `json:"itemTotal"`
}

// AddCartItemRequest is the body of POST /cart/items.
type AddCartItemRequest struct {
	MenuItemID          string          `json:"menuItemId"`
	Quantity            decimal.Decimal `json:"quantity"`
	Customizations      []string        `json:"customizations"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

// UpdateCartItemRequest is the body of PUT /cart/items/{itemId}. Omitted
// fields keep their current value.
type UpdateCartItemRequest struct {
	Quantity            *decimal.Decimal `json:"quantity,omitempty"`
	Customizations      *[]string        `json:"customizations,omitempty"`
	SpecialInstructions *string          `json:"specialInstructions,omitempty"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Name                string `json:"name,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}
