package models

// Selection is the visitor's current choice: date, slot, participant
// counts and selected extra ids. It is owned and mutated exclusively by
// the widget controller; changing the date invalidates the slot choice
// because slots are keyed to a date.
type Selection struct {
	Date     string          `json:"date"`    // YYYY-MM-DD, empty until chosen
	SlotID   string          `json:"slot_id"` // empty until chosen
	Adults   int             `json:"adults"`
	Children int             `json:"children"`
	ExtraIDs map[string]bool `json:"extra_ids"`
}

// NewSelection returns an empty selection ready for mutation.
func NewSelection() Selection {
	return Selection{ExtraIDs: make(map[string]bool)}
}

// SetDate records a new date and drops the slot choice, which belonged
// to the previous date.
func (s *Selection) SetDate(date string) {
	s.Date = date
	s.SlotID = ""
}

// ToggleExtra flips an extra's membership and reports the new state.
func (s *Selection) ToggleExtra(id string) bool {
	if s.ExtraIDs == nil {
		s.ExtraIDs = make(map[string]bool)
	}
	s.ExtraIDs[id] = !s.ExtraIDs[id]
	return s.ExtraIDs[id]
}

// Participants is the total head count.
func (s Selection) Participants() int {
	return s.Adults + s.Children
}

// Snapshot returns a deep copy safe to hand to an asynchronous
// submission while the original keeps mutating.
func (s Selection) Snapshot() Selection {
	out := s
	out.ExtraIDs = make(map[string]bool, len(s.ExtraIDs))
	for id, on := range s.ExtraIDs {
		out.ExtraIDs[id] = on
	}
	return out
}
