package customization

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Kind tags a flat customization with the group it belongs to.
type Kind string

const (
	KindSize     Kind = "SIZE"
	KindAddon    Kind = "ADDON"
	KindModifier Kind = "MODIFIER"
	KindOption   Kind = "OPTION"
)

// kindOrder is the display order of flat groups: size first.
var kindOrder = []Kind{KindSize, KindAddon, KindModifier, KindOption}

// Label is the group name shown for a kind.
func (k Kind) Label() string {
	switch k {
	case KindSize:
		return "Size"
	case KindAddon:
		return "Add-ons"
	case KindModifier:
		return "Preferences"
	case KindOption:
		return "Options"
	default:
		return string(k)
	}
}

func (k Kind) IsValid() bool {
	return slices.Contains(kindOrder, k)
}

// FlatItem is one row of a flat customization list. The cardinality fields are
// repeated on every row; the first active row of a kind defines the group rule.
type FlatItem struct {
	ID            string
	Name          string
	Kind          Kind
	Price         decimal.Decimal
	Inactive      bool
	Required      bool
	MinSelections int
	MaxSelections int
}

// NewFlatTree partitions items by kind into groups ordered SIZE, ADDON,
// MODIFIER, OPTION. Inactive items are dropped and options are ordered by name.
// A zero MaxSelections means "as many as there are options".
func NewFlatTree(items []FlatItem) (*Tree, error) {
	byKind := make(map[Kind][]FlatItem)
	var problems []error
	for i, item := range items {
		path := fmt.Sprintf("customizations[%d]", i)
		switch {
		case strings.TrimSpace(item.ID) == "":
			problems = append(problems, errs.NewStructureIsInvalidError(path+".id", errors.New("id is empty")))
			continue
		case strings.TrimSpace(item.Name) == "":
			problems = append(problems, errs.NewStructureIsInvalidError(path+".name", errors.New("name is empty")))
			continue
		case !item.Kind.IsValid():
			problems = append(problems, errs.NewStructureIsInvalidError(path+".type",
				fmt.Errorf("unknown customization type %q", item.Kind)))
			continue
		}
		if item.Inactive {
			continue
		}
		byKind[item.Kind] = append(byKind[item.Kind], item)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	roots := make([]*Group, 0, len(byKind))
	for order, kind := range kindOrder {
		members, ok := byKind[kind]
		if !ok {
			continue
		}

		first := members[0]
		rule := Rule{Min: first.MinSelections, Max: first.MaxSelections, Required: first.Required}
		if rule.Max == 0 {
			rule.Max = len(members)
		}
		if err := rule.validate(); err != nil {
			return nil, errs.NewStructureIsInvalidError("group "+string(kind), err)
		}

		slices.SortStableFunc(members, func(a, b FlatItem) int {
			return strings.Compare(a.Name, b.Name)
		})
		options := make([]Option, 0, len(members))
		for i, m := range members {
			options = append(options, Option{id: m.ID, name: m.Name, price: m.Price, displayOrder: i})
		}

		roots = append(roots, &Group{
			id:           string(kind),
			name:         kind.Label(),
			kind:         kind,
			rule:         rule,
			displayOrder: order,
			options:      options,
		})
	}

	return newTree(LayoutFlat, roots)
}
