package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/franpass87/bookwidget/internal/models"
)

// Event names emitted by the widget.
const (
	EventExtraSelected = "extra_selected"
	EventBeginCheckout = "begin_checkout"
)

// Event is one structured analytics record.
type Event struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Params    map[string]any `json:"params,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Sink accepts events fire-and-forget. Implementations must never block
// the booking flow and never surface errors to it; a broken sink is a
// logging concern, not a user-facing one.
type Sink interface {
	Push(ev Event)
}

// NewEvent stamps an event with an id and creation time.
func NewEvent(name string, params map[string]any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      name,
		Params:    params,
		CreatedAt: time.Now(),
	}
}

// ExtraSelected describes a checkbox toggle on an extra.
func ExtraSelected(extra models.Extra, selected bool) Event {
	return NewEvent(EventExtraSelected, map[string]any{
		"extra":    extra.Name,
		"selected": selected,
	})
}

// BeginCheckout describes a successful hand-off to the cart.
func BeginCheckout(total models.Cents, currency string) Event {
	return NewEvent(EventBeginCheckout, map[string]any{
		"value":    int64(total),
		"currency": currency,
	})
}

// Nop discards every event. Used when analytics is disabled and as the
// default in tests.
type Nop struct{}

func (Nop) Push(Event) {}
