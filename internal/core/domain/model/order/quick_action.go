package order

// QuickAction is a one-click staff affordance moving an order to Target.
type QuickAction struct {
	Target Status
	Label  string
}

func getActionLabels() map[Status]string {
	//nolint:exhaustive // only transition targets have action labels
	return map[Status]string{
		Preparing: "Start Preparing",
		Ready:     "Mark Ready",
		Completed: "Complete Order",
		Cancelled: "Cancel",
	}
}

// QuickActions lists the actions offered for an order in status s. The list
// is derived only from AllowedTransitions, so terminal orders get none.
func (s Status) QuickActions() []QuickAction {
	allowed := s.AllowedTransitions()
	actions := make([]QuickAction, 0, len(allowed))
	for _, next := range allowed {
		actions = append(actions, QuickAction{Target: next, Label: getActionLabels()[next]})
	}
	return actions
}
