package customization

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// GroupError is one cardinality violation, keyed by the offending group.
type GroupError struct {
	GroupID   string
	GroupName string
	Message   string
}

// Validation is the outcome of Validate. Problems are data, not errors.
type Validation struct {
	Valid  bool
	Errors []GroupError
}

// Messages returns the human-readable messages in group order.
func (v Validation) Messages() []string {
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// For returns the errors reported for one group.
func (v Validation) For(groupID string) []GroupError {
	var out []GroupError
	for _, e := range v.Errors {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out
}

// Err converts a failed validation into an error for callers that must stop
// a command. It returns nil when the selection is valid.
func (v Validation) Err() error {
	if v.Valid {
		return nil
	}
	return &SelectionIsInvalidError{Errors: v.Errors}
}

// SelectionIsInvalidError carries the validation problems through an error
// return path. It unwraps to errs.ErrValueIsInvalid.
type SelectionIsInvalidError struct {
	Errors []GroupError
}

func (e *SelectionIsInvalidError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("%s: selection (%s)", errs.ErrValueIsInvalid, strings.Join(msgs, "; "))
}

func (e *SelectionIsInvalidError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Validate checks every group at every depth. A required group with fewer
// than Min selections and a group with more than Max selections each produce
// an error; both can be reported for the same group.
func Validate(tree *Tree, selection Selection) Validation {
	var problems []GroupError
	tree.Walk(func(g *Group) {
		count := selection.CountIn(g)
		if g.rule.Required && count < g.rule.Min {
			problems = append(problems, GroupError{
				GroupID:   g.id,
				GroupName: g.name,
				Message:   g.missingMessage(),
			})
		}
		if count > g.rule.Max {
			problems = append(problems, GroupError{
				GroupID:   g.id,
				GroupName: g.name,
				Message:   g.excessMessage(),
			})
		}
	})

	return Validation{Valid: len(problems) == 0, Errors: problems}
}
