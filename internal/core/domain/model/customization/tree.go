package customization

import (
	"fmt"
	"slices"

	"storefront/internal/pkg/errs"
)

// Layout tells which catalog shape a Tree was built from.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutFlat
	LayoutHierarchical
)

func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "SIMPLE"
	case LayoutHierarchical:
		return "COMPLEX_DAG"
	default:
		return "NONE"
	}
}

type optionEntry struct {
	option Option
	group  *Group
}

// Tree is the constraint tree of one product. It is immutable after
// construction and safe for concurrent readers.
//
// Lookups go through indexes filled by a single recursive walk at
// construction time, so Option and GroupOf do not search the forest.
type Tree struct {
	layout  Layout
	roots   []*Group
	groups  map[string]*Group
	options map[string]optionEntry
}

// NewEmptyTree returns the tree of a product without customizations.
func NewEmptyTree() *Tree {
	return &Tree{
		layout:  LayoutNone,
		groups:  map[string]*Group{},
		options: map[string]optionEntry{},
	}
}

func newTree(layout Layout, roots []*Group) (*Tree, error) {
	t := &Tree{
		layout:  layout,
		roots:   roots,
		groups:  make(map[string]*Group),
		options: make(map[string]optionEntry),
	}

	var err error
	t.Walk(func(g *Group) {
		if err != nil {
			return
		}
		_, dupGroup := t.groups[g.id]
		_, dupOption := t.options[g.id]
		if dupGroup || dupOption {
			err = errs.NewStructureIsInvalidError("group "+g.id, fmt.Errorf("duplicate id %q", g.id))
			return
		}
		t.groups[g.id] = g
		for _, o := range g.options {
			if _, dup := t.options[o.id]; dup {
				err = errs.NewStructureIsInvalidError("option "+o.id, fmt.Errorf("option %q belongs to more than one group", o.id))
				return
			}
			if _, clash := t.groups[o.id]; clash {
				err = errs.NewStructureIsInvalidError("option "+o.id, fmt.Errorf("id %q is used by a group", o.id))
				return
			}
			t.options[o.id] = optionEntry{option: o, group: g}
		}
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tree) Layout() Layout {
	return t.layout
}

// IsEmpty reports whether the product has nothing to customize.
func (t *Tree) IsEmpty() bool {
	return len(t.roots) == 0
}

// Groups returns the root groups in display order.
func (t *Tree) Groups() []*Group {
	return slices.Clone(t.roots)
}

// Walk visits every group depth-first, parents before children.
func (t *Tree) Walk(fn func(g *Group)) {
	var visit func(groups []*Group)
	visit = func(groups []*Group) {
		for _, g := range groups {
			fn(g)
			visit(g.groups)
		}
	}
	visit(t.roots)
}

// AllGroups returns every group at every depth in Walk order.
func (t *Tree) AllGroups() []*Group {
	all := make([]*Group, 0, len(t.groups))
	t.Walk(func(g *Group) { all = append(all, g) })
	return all
}

func (t *Tree) Group(id string) (*Group, bool) {
	g, ok := t.groups[id]
	return g, ok
}

func (t *Tree) Option(id string) (Option, bool) {
	e, ok := t.options[id]
	return e.option, ok
}

// GroupOf returns the group that owns optionID.
func (t *Tree) GroupOf(optionID string) (*Group, bool) {
	e, ok := t.options[optionID]
	return e.group, ok
}

// Unknown returns the selected ids that are not options of this tree.
func (t *Tree) Unknown(selection Selection) []string {
	var unknown []string
	for _, id := range selection.ids {
		if _, ok := t.options[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
