package customization

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// NodeType is the role of a node in a hierarchical catalog entry.
type NodeType string

const (
	NodeGroup    NodeType = "GROUP"
	NodeOption   NodeType = "OPTION"
	NodeModifier NodeType = "MODIFIER"
)

// Constraints are the raw cardinality settings of a GROUP node. Zero Max
// means "as many as the group has options".
type Constraints struct {
	Min      int
	Max      int
	Required bool
}

// Node is one element of a hierarchical customization forest as stored in the
// catalog.
type Node struct {
	ID           string
	Type         NodeType
	Name         string
	Description  string
	Price        decimal.Decimal
	DisplayOrder int
	Children     []Node
	Constraints  Constraints
}

// NewHierarchicalTree builds a tree from a forest of GROUP nodes. GROUP
// children become nested groups, OPTION and MODIFIER children become options.
// Nesting depth is not limited.
func NewHierarchicalTree(nodes []Node) (*Tree, error) {
	roots := make([]*Group, 0, len(nodes))
	var problems []error
	for i, n := range nodes {
		path := fmt.Sprintf("customizations[%d]", i)
		if n.Type != NodeGroup {
			problems = append(problems, errs.NewStructureIsInvalidError(path,
				fmt.Errorf("root node %q is %s, expected %s", n.ID, n.Type, NodeGroup)))
			continue
		}
		g, err := buildGroup(path, n)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		roots = append(roots, g)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	sortGroups(roots)
	return newTree(LayoutHierarchical, roots)
}

func buildGroup(path string, n Node) (*Group, error) {
	if err := checkIdentity(path, n); err != nil {
		return nil, err
	}

	g := &Group{
		id:           n.ID,
		name:         n.Name,
		description:  n.Description,
		displayOrder: n.DisplayOrder,
	}

	for i, child := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		switch child.Type {
		case NodeGroup:
			nested, err := buildGroup(childPath, child)
			if err != nil {
				return nil, err
			}
			g.groups = append(g.groups, nested)
		case NodeOption, NodeModifier:
			if err := checkIdentity(childPath, child); err != nil {
				return nil, err
			}
			if len(child.Children) > 0 {
				return nil, errs.NewStructureIsInvalidError(childPath,
					fmt.Errorf("%s %q must not have children", child.Type, child.ID))
			}
			g.options = append(g.options, Option{
				id:           child.ID,
				name:         child.Name,
				description:  child.Description,
				price:        child.Price,
				displayOrder: child.DisplayOrder,
			})
		default:
			return nil, errs.NewStructureIsInvalidError(childPath+".type",
				fmt.Errorf("unknown node type %q", child.Type))
		}
	}

	g.rule = Rule{Min: n.Constraints.Min, Max: n.Constraints.Max, Required: n.Constraints.Required}
	if g.rule.Max == 0 {
		g.rule.Max = len(g.options)
	}
	if err := g.rule.validate(); err != nil {
		return nil, errs.NewStructureIsInvalidError(path+".constraints", err)
	}

	slices.SortStableFunc(g.options, func(a, b Option) int {
		return cmp.Compare(a.displayOrder, b.displayOrder)
	})
	sortGroups(g.groups)
	return g, nil
}

func checkIdentity(path string, n Node) error {
	if strings.TrimSpace(n.ID) == "" {
		return errs.NewStructureIsInvalidError(path+".id", errors.New("id is empty"))
	}
	if strings.TrimSpace(n.Name) == "" {
		return errs.NewStructureIsInvalidError(path+".name", errors.New("name is empty"))
	}
	return nil
}

func sortGroups(groups []*Group) {
	slices.SortStableFunc(groups, func(a, b *Group) int {
		return cmp.Compare(a.displayOrder, b.displayOrder)
	})
}
