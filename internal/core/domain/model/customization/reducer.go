package customization

// Toggle returns the selection that results from clicking optionID in group
// groupID.
//
// In an exclusive group every selected option of the group is removed and
// optionID is added, so clicking the already selected option keeps it
// selected: a radio button is replaced, never cleared.
//
// In a multi group a selected option is removed; an unselected one is added
// only while the group holds fewer than Max selections, otherwise the click is
// ignored.
//
// Unknown groups and options that are not members of the group leave the
// selection unchanged.
func Toggle(tree *Tree, current Selection, groupID, optionID string) Selection {
	group, ok := tree.Group(groupID)
	if !ok || !group.Has(optionID) {
		return current
	}

	if group.rule.IsExclusive() {
		return current.without(group.OptionIDs()...).with(optionID)
	}

	if current.Contains(optionID) {
		return current.without(optionID)
	}
	if current.CountIn(group) >= group.rule.Max {
		return current
	}
	return current.with(optionID)
}

// CanAdd reports whether optionID could still be added to its group without
// hitting the cap. Presentation layers use it to disable checkboxes.
func CanAdd(tree *Tree, current Selection, optionID string) bool {
	group, ok := tree.GroupOf(optionID)
	if !ok {
		return false
	}
	if group.rule.IsExclusive() || current.Contains(optionID) {
		return true
	}
	return current.CountIn(group) < group.rule.Max
}
