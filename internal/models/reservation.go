package models

// ReservationExtra is an extra denormalized at submission time (name and
// price travel with the request so the backend need not look them up).
type ReservationExtra struct {
	Name  string `json:"name"`
	Price Cents  `json:"price"`
}

// Reservation is the payload of an add-to-cart request.
type Reservation struct {
	ProductID    string             `json:"product_id"`
	OccurrenceID string             `json:"occurrence_id"`
	Adults       int                `json:"adults"`
	Children     int                `json:"children"`
	Extras       []ReservationExtra `json:"extras"`
}

// SubmissionResult is the outcome of a reservation attempt: either a
// cart URL to navigate to, or a user-facing message.
type SubmissionResult struct {
	OK      bool   `json:"ok"`
	CartURL string `json:"cart_url,omitempty"`
	Message string `json:"message,omitempty"`
}
