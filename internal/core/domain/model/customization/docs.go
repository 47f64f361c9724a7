// Package customization models the configurable options of a menu item.
//
// Options are grouped; every group carries a cardinality Rule. Two catalog
// shapes are supported and end up in the same Tree:
//
//   - a flat list of options tagged with a group kind (SIZE, ADDON, MODIFIER, OPTION),
//     built with NewFlatTree;
//   - a forest of GROUP nodes whose children are options or nested groups,
//     built with NewHierarchicalTree.
//
// The package is pure: Toggle computes the next Selection for a click and
// Validate reports cardinality problems as data. Neither touches I/O.
package customization
