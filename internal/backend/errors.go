package backend

import "errors"

var (
	// ErrNoSlotSelected means the visitor tried to book without picking
	// a time slot.
	ErrNoSlotSelected = errors.New("select a slot")
	// ErrNoParticipants means the booking has no adults and no children.
	ErrNoParticipants = errors.New("at least one participant required")
)
