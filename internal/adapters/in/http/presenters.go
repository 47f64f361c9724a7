package http

import (
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/api"
)

func presentProduct(p *catalog.Product) api.Product {
	rule := p.Quantity()
	quantity := api.QuantityRule{Min: rule.Min(), Step: rule.Step()}
	if !rule.Max().IsZero() {
		maxQty := rule.Max()
		quantity.Max = &maxQty
	}

	taxes := make([]api.ProductTax, 0, len(p.Taxes()))
	for _, t := range p.Taxes() {
		taxes = append(taxes, api.ProductTax{Name: t.Name, Kind: t.Kind, Value: t.Value, Inclusive: t.Inclusive})
	}

	tree := p.Customizations()
	return api.Product{
		ID:              p.ID(),
		Slug:            p.Slug(),
		Name:            p.Name(),
		Description:     p.Description(),
		BasePrice:       p.BasePrice(),
		QuantityType:    p.QuantityType(),
		Unit:            p.Unit(),
		Quantity:        quantity,
		Available:       p.Available(),
		PrepTimeMinutes: p.PrepTimeMinutes(),
		Taxes:           taxes,
		Layout:          tree.Layout().String(),
		Groups:          api.FromGroups(tree.Groups(), kernel.FormatPriceDelta),
	}
}

func presentCart(sessionID string, resp queries.GetCartQueryResponse) api.Cart {
	items := make([]api.CartItem, 0, len(resp.Lines))
	for _, l := range resp.Lines {
		pricing := l.Pricing()
		items = append(items, api.CartItem{
			ID:                  l.ID().String(),
			MenuItemID:          l.ProductID(),
			Name:                l.ProductName(),
			BasePrice:           l.BasePrice(),
			Quantity:            l.Quantity(),
			Customizations:      api.FromChosen(l.Options()),
			SpecialInstructions: l.Note(),
			UnitPrice:           pricing.UnitPrice,
			ItemSubtotal:        pricing.Subtotal,
			Taxes:               api.FromTaxCharges(pricing.Taxes),
			ItemTaxAmount:       pricing.TaxAmount,
			ItemTotal:           pricing.Total,
		})
	}

	return api.Cart{
		SessionID:   sessionID,
		Items:       items,
		ItemCount:   len(items),
		Subtotal:    resp.Subtotal,
		TaxAmount:   resp.TaxAmount,
		Total:       resp.Total,
		CanCheckout: len(items) > 0,
		ExpiresAt:   resp.ExpiresAt,
	}
}

func presentQuote(resp queries.QuotePriceQueryResponse) api.Quote {
	pricing := resp.Quote.Pricing
	q := api.Quote{
		MenuItemID:   resp.Product.ID(),
		Quantity:     resp.Quantity,
		UnitPrice:    pricing.UnitPrice,
		Subtotal:     pricing.Subtotal,
		Taxes:        api.FromTaxCharges(pricing.Taxes),
		TaxAmount:    pricing.TaxAmount,
		Total:        pricing.Total,
		DisplayTotal: kernel.FormatPrice(pricing.Total),
		Valid:        resp.Quote.Validation.Valid && len(resp.Quote.Unknown) == 0 && resp.QuantityError == nil,
		GroupErrors:  api.FromValidation(resp.Quote.Validation),
		UnknownIDs:   resp.Quote.Unknown,
	}
	if resp.QuantityError != nil {
		q.QuantityError = resp.QuantityError.Error()
	}
	return q
}
