// Package catalogrepo serves the menu from a YAML file. The file is read once;
// a malformed product is kept out of the menu and reported on lookup while
// the rest of the catalog stays usable.
package catalogrepo

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// catalogFile is the root of a catalog document.
type catalogFile struct {
	Products []productDTO `yaml:"products"`
}

// productDTO is one menu entry. Money and quantities are strings so that
// "3.50" keeps its exact decimal value. A product carries either a flat
// customizations list or a tree of groups, never both.
type productDTO struct {
	ID              string        `yaml:"id"`
	Slug            string        `yaml:"slug"`
	Name            string        `yaml:"name"`
	Description     string        `yaml:"description,omitempty"`
	BasePrice       string        `yaml:"basePrice"`
	QuantityType    string        `yaml:"quantityType,omitempty"`
	Unit            string        `yaml:"unit,omitempty"`
	Quantity        *quantityDTO  `yaml:"quantity,omitempty"`
	Available       *bool         `yaml:"available,omitempty"`
	PrepTimeMinutes int           `yaml:"prepTimeMinutes,omitempty"`
	Taxes           []taxDTO      `yaml:"taxes,omitempty"`
	Customizations  []flatItemDTO `yaml:"customizations,omitempty"`
	Groups          []nodeDTO     `yaml:"groups,omitempty"`
}

type quantityDTO struct {
	Min  string `yaml:"min"`
	Max  string `yaml:"max,omitempty"`
	Step string `yaml:"step,omitempty"`
}

type taxDTO struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Value     string `yaml:"value"`
	Inclusive bool   `yaml:"inclusive,omitempty"`
}

type flatItemDTO struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Price         string `yaml:"price,omitempty"`
	Active        *bool  `yaml:"active,omitempty"`
	Required      bool   `yaml:"required,omitempty"`
	MinSelections int    `yaml:"minSelections,omitempty"`
	MaxSelections int    `yaml:"maxSelections,omitempty"`
}

type nodeDTO struct {
	ID           string    `yaml:"id"`
	Type         string    `yaml:"type"`
	Name         string    `yaml:"name"`
	Description  string    `yaml:"description,omitempty"`
	Price        string    `yaml:"price,omitempty"`
	DisplayOrder int       `yaml:"displayOrder,omitempty"`
	Min          int       `yaml:"min,omitempty"`
	Max          int       `yaml:"max,omitempty"`
	Required     bool      `yaml:"required,omitempty"`
	Children     []nodeDTO `yaml:"children,omitempty"`
}

// toDomain builds a product. Every failure is reported as a structure error
// rooted at path.
func (p productDTO) toDomain(path string) (*catalog.Product, error) {
	var problems []error

	basePrice, err := parseDecimal(p.BasePrice, true)
	if err != nil {
		problems = append(problems, errs.NewStructureIsInvalidError(path+".basePrice", err))
	}

	quantityType := catalog.QuantityType(strings.ToUpper(p.QuantityType))
	if p.QuantityType == "" {
		quantityType = catalog.QuantityUnit
	}

	rule, err := p.quantityRule()
	if err != nil {
		problems = append(problems, errs.NewStructureIsInvalidError(path+".quantity", err))
	}

	taxes := make([]catalog.Tax, 0, len(p.Taxes))
	for i, t := range p.Taxes {
		value, valueErr := parseDecimal(t.Value, true)
		if valueErr != nil {
			problems = append(problems, errs.NewStructureIsInvalidError(fmt.Sprintf("%s.taxes[%d].value", path, i), valueErr))
			continue
		}
		taxes = append(taxes, catalog.Tax{
			Name:      t.Name,
			Kind:      catalog.TaxKind(strings.ToUpper(t.Kind)),
			Value:     value,
			Inclusive: t.Inclusive,
		})
	}

	tree, err := p.tree()
	if err != nil {
		problems = append(problems, errs.NewStructureIsInvalidError(path+".customizations", err))
	}

	if err = errors.Join(problems...); err != nil {
		return nil, err
	}

	available := true
	if p.Available != nil {
		available = *p.Available
	}

	product, err := catalog.NewProduct(catalog.ProductParams{
		ID:              p.ID,
		Slug:            p.Slug,
		Name:            p.Name,
		Description:     p.Description,
		BasePrice:       basePrice,
		QuantityType:    quantityType,
		Unit:            p.Unit,
		Quantity:        rule,
		Available:       available,
		PrepTimeMinutes: p.PrepTimeMinutes,
		Taxes:           taxes,
		Customizations:  tree,
	})
	if err != nil {
		return nil, errs.NewStructureIsInvalidError(path, err)
	}
	return product, nil
}

func (p productDTO) quantityRule() (catalog.QuantityRule, error) {
	if p.Quantity == nil {
		return catalog.DefaultQuantityRule(), nil
	}

	minQty, err := parseDecimal(p.Quantity.Min, true)
	if err != nil {
		return catalog.QuantityRule{}, err
	}
	maxQty, err := parseDecimal(p.Quantity.Max, false)
	if err != nil {
		return catalog.QuantityRule{}, err
	}
	step := decimal.NewFromInt(1)
	if p.Quantity.Step != "" {
		if step, err = parseDecimal(p.Quantity.Step, true); err != nil {
			return catalog.QuantityRule{}, err
		}
	}

	return catalog.NewQuantityRule(minQty, maxQty, step)
}

func (p productDTO) tree() (*customization.Tree, error) {
	switch {
	case len(p.Customizations) > 0 && len(p.Groups) > 0:
		return nil, errors.New("customizations and groups are mutually exclusive")
	case len(p.Groups) > 0:
		nodes, err := toNodes(p.Groups)
		if err != nil {
			return nil, err
		}
		return customization.NewHierarchicalTree(nodes)
	case len(p.Customizations) > 0:
		items := make([]customization.FlatItem, 0, len(p.Customizations))
		for i, c := range p.Customizations {
			price, err := parseDecimal(c.Price, false)
			if err != nil {
				return nil, fmt.Errorf("customizations[%d].price: %w", i, err)
			}
			items = append(items, customization.FlatItem{
				ID:            c.ID,
				Name:          c.Name,
				Kind:          customization.Kind(strings.ToUpper(c.Type)),
				Price:         price,
				Inactive:      c.Active != nil && !*c.Active,
				Required:      c.Required,
				MinSelections: c.MinSelections,
				MaxSelections: c.MaxSelections,
			})
		}
		return customization.NewFlatTree(items)
	default:
		return customization.NewEmptyTree(), nil
	}
}

func toNodes(dtos []nodeDTO) ([]customization.Node, error) {
	nodes := make([]customization.Node, 0, len(dtos))
	for _, n := range dtos {
		price, err := parseDecimal(n.Price, false)
		if err != nil {
			return nil, fmt.Errorf("node %q price: %w", n.ID, err)
		}
		children, err := toNodes(n.Children)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, customization.Node{
			ID:           n.ID,
			Type:         customization.NodeType(strings.ToUpper(n.Type)),
			Name:         n.Name,
			Description:  n.Description,
			Price:        price,
			DisplayOrder: n.DisplayOrder,
			Children:     children,
			Constraints:  customization.Constraints{Min: n.Min, Max: n.Max, Required: n.Required},
		})
	}
	return nodes, nil
}

func parseDecimal(raw string, required bool) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return decimal.Zero, errors.New("value is empty")
		}
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
