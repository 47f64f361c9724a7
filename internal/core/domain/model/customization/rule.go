package customization

import (
	"fmt"
)

// Rule is the cardinality constraint of a group.
//
// A group with Max == 1 uses the exclusive (radio) discipline, any larger Max
// the multi (checkbox) discipline.
type Rule struct {
	Min      int
	Max      int
	Required bool
}

// IsExclusive reports whether choosing an option replaces the previous choice.
func (r Rule) IsExclusive() bool {
	return r.Max == 1
}

// Label renders the rule for display next to the group name.
//
// Examples:
//
//	Rule{Min: 1, Max: 1, Required: true}.Label() // "Choose 1"
//	Rule{Min: 0, Max: 1}.Label()                 // "Choose 1 (optional)"
//	Rule{Min: 2, Max: 2, Required: true}.Label() // "Choose exactly 2"
//	Rule{Min: 1, Max: 3, Required: true}.Label() // "Choose 1–3"
//	Rule{Min: 0, Max: 3}.Label()                 // "Choose up to 3"
func (r Rule) Label() string {
	switch {
	case r.Max == 1:
		if r.Required {
			return "Choose 1"
		}
		return "Choose 1 (optional)"
	case r.Min == r.Max:
		return fmt.Sprintf("Choose exactly %d", r.Max)
	case r.Min > 0:
		return fmt.Sprintf("Choose %d–%d", r.Min, r.Max)
	default:
		return fmt.Sprintf("Choose up to %d", r.Max)
	}
}

func (r Rule) validate() error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("bounds must not be negative, got min %d max %d", r.Min, r.Max)
	}
	return nil
}
