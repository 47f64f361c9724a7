package customization

import (
	"encoding/json"
	"slices"
)

// Selection is an ordered set of selected option ids. The zero value is the
// empty selection. Methods never modify the receiver.
type Selection struct {
	ids []string
}

// NewSelection keeps the first occurrence of every id.
func NewSelection(ids ...string) Selection {
	s := Selection{}
	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// IDs returns a copy of the selected ids in selection order.
func (s Selection) IDs() []string {
	return slices.Clone(s.ids)
}

func (s Selection) Len() int {
	return len(s.ids)
}

func (s Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

func (s Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Equal compares ids and their order.
func (s Selection) Equal(other Selection) bool {
	return slices.Equal(s.ids, other.ids)
}

// CountIn returns how many selected ids are direct options of g.
func (s Selection) CountIn(g *Group) int {
	n := 0
	for _, id := range s.ids {
		if g.Has(id) {
			n++
		}
	}
	return n
}

func (s Selection) with(id string) Selection {
	if s.Contains(id) {
		return s
	}
	next := make([]string, len(s.ids), len(s.ids)+1)
	copy(next, s.ids)
	return Selection{ids: append(next, id)}
}

func (s Selection) without(ids ...string) Selection {
	next := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if !slices.Contains(ids, id) {
			next = append(next, id)
		}
	}
	return Selection{ids: next}
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if s.ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.ids)
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSelection(ids...)
	return nil
}
