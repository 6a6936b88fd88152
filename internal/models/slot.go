package models

import "fmt"

// Slot is a bookable occurrence of a product on a specific date.
// The list for a date is replaced wholesale whenever the date changes;
// ordering is whatever the backend returned.
type Slot struct {
	ID        string `json:"id"`
	Time      string `json:"time"` // HH:MM format
	Available int    `json:"available"`
	SoldOut   bool   `json:"soldout"`
}

// Label renders the display text for a slot entry. Sold-out slots show a
// fixed marker instead of the remaining-seat count.
func (s Slot) Label() string {
	if s.SoldOut {
		return fmt.Sprintf("%s (sold-out)", s.Time)
	}
	return fmt.Sprintf("%s (%d posti)", s.Time, s.Available)
}

// Selectable reports whether the slot can be chosen by the visitor.
func (s Slot) Selectable() bool {
	return !s.SoldOut
}
