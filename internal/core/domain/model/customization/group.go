package customization

import (
	"slices"
	"strings"
)

// Group owns an ordered set of options and, in hierarchical trees, nested groups.
// Membership is fixed at construction.
type Group struct {
	id           string
	name         string
	kind         Kind
	description  string
	rule         Rule
	displayOrder int
	options      []Option
	groups       []*Group
}

func (g *Group) ID() string {
	return g.id
}

func (g *Group) Name() string {
	return g.name
}

// Kind is set for groups built from a flat catalog and empty otherwise.
func (g *Group) Kind() Kind {
	return g.kind
}

func (g *Group) Description() string {
	return g.description
}

func (g *Group) Rule() Rule {
	return g.rule
}

// Label is shorthand for Rule().Label().
func (g *Group) Label() string {
	return g.rule.Label()
}

func (g *Group) DisplayOrder() int {
	return g.displayOrder
}

// Options returns the direct option members in display order.
func (g *Group) Options() []Option {
	return slices.Clone(g.options)
}

// Groups returns the nested groups in display order.
func (g *Group) Groups() []*Group {
	return slices.Clone(g.groups)
}

// OptionIDs returns the ids of the direct option members.
func (g *Group) OptionIDs() []string {
	ids := make([]string, 0, len(g.options))
	for _, o := range g.options {
		ids = append(ids, o.id)
	}
	return ids
}

// Has reports whether optionID is a direct member of the group.
func (g *Group) Has(optionID string) bool {
	return slices.ContainsFunc(g.options, func(o Option) bool { return o.id == optionID })
}

// missingMessage and excessMessage word validation errors. Flat groups are
// named after their kind ("addon"), hierarchical groups after their name.
func (g *Group) missingMessage() string {
	if g.kind != "" {
		return "Please select " + strings.ToLower(string(g.kind))
	}
	return "Please select " + strings.ToLower(g.name)
}

func (g *Group) excessMessage() string {
	if g.kind != "" {
		return "Too many " + strings.ToLower(string(g.kind)) + " selections"
	}
	return "Too many selections for " + strings.ToLower(g.name)
}
