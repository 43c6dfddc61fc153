package reservation

import "slices"

type SelectedOption struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// OptionSelection tracks active add-on ids in selection order and, for
// countable options, their quantity. Every key of counts is also in ids.
type OptionSelection struct {
	ids    []string
	counts map[string]int
}

func NewOptionSelection() OptionSelection {
	return OptionSelection{counts: map[string]int{}}
}

// RestoreOptionSelection rebuilds a selection from persisted items. Items
// with duplicate ids keep the first occurrence; counts below 1 become 1.
func RestoreOptionSelection(items []SelectedOption) OptionSelection {
	s := NewOptionSelection()
	for _, it := range items {
		if it.ID == "" || s.Has(it.ID) {
			continue
		}
		count := it.Count
		if count < 1 {
			count = 1
		}
		s.ids = append(s.ids, it.ID)
		s.counts[it.ID] = count
	}
	return s
}

func (s *OptionSelection) Toggle(id string) {
	if s.counts == nil {
		s.counts = map[string]int{}
	}
	if idx := slices.Index(s.ids, id); idx >= 0 {
		s.ids = slices.Delete(s.ids, idx, idx+1)
		delete(s.counts, id)
		return
	}
	s.ids = append(s.ids, id)
	s.counts[id] = 1
}

// SetCount is a silent no-op unless id is selected and 1 <= n <= max.
func (s *OptionSelection) SetCount(id string, n, max int) bool {
	if !s.Has(id) || n < 1 || n > max {
		return false
	}
	s.counts[id] = n
	return true
}

func (s OptionSelection) Has(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s OptionSelection) Count(id string) int {
	if c, ok := s.counts[id]; ok && c >= 1 {
		return c
	}
	return 1
}

func (s OptionSelection) Len() int {
	return len(s.ids)
}

func (s OptionSelection) IDs() []string {
	return slices.Clone(s.ids)
}

// Items returns the selection in order with every count >= 1.
func (s OptionSelection) Items() []SelectedOption {
	items := make([]SelectedOption, 0, len(s.ids))
	for _, id := range s.ids {
		items = append(items, SelectedOption{ID: id, Count: s.Count(id)})
	}
	return items
}

func (s OptionSelection) Equal(other OptionSelection) bool {
	if !slices.Equal(s.ids, other.ids) {
		return false
	}
	for _, id := range s.ids {
		if s.Count(id) != other.Count(id) {
			return false
		}
	}
	return true
}
