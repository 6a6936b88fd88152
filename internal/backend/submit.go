package backend

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/franpass87/bookwidget/internal/logger"
	"github.com/franpass87/bookwidget/internal/models"
)

// ReservationSubmitter is the capability the widget controller needs to
// hand a booking to the server-side cart.
type ReservationSubmitter interface {
	SubmitReservation(ctx context.Context, res models.Reservation) models.SubmissionResult
}

// ValidateReservation runs the local pre-submission checks. Validation
// failures are user errors, not transport errors: no request is issued.
func ValidateReservation(res models.Reservation) error {
	if res.OccurrenceID == "" {
		return ErrNoSlotSelected
	}
	if res.Adults+res.Children <= 0 {
		return ErrNoParticipants
	}
	return nil
}

// SubmitReservation validates the reservation, posts it, and reports the
// outcome. On success the result carries the cart URL the caller must
// navigate to; on failure it carries the backend message or the
// configured fallback. No retry is attempted.
func (c *Client) SubmitReservation(ctx context.Context, res models.Reservation) models.SubmissionResult {
	if err := ValidateReservation(res); err != nil {
		return models.SubmissionResult{Message: err.Error()}
	}

	extras := res.Extras
	if extras == nil {
		extras = []models.ReservationExtra{}
	}
	extrasJSON, err := json.Marshal(extras)
	if err != nil {
		logger.Error("failed to encode extras", "error", err)
		return models.SubmissionResult{Message: c.fallback}
	}

	fields := url.Values{}
	fields.Set("product_id", res.ProductID)
	fields.Set("occurrence_id", res.OccurrenceID)
	fields.Set("adults", strconv.Itoa(res.Adults))
	fields.Set("children", strconv.Itoa(res.Children))
	fields.Set("extras", string(extrasJSON))

	env, err := c.post(ctx, actionReserve, fields)
	if err != nil {
		logger.Warn("reservation failed", "product_id", res.ProductID, "occurrence_id", res.OccurrenceID, "error", err)
		return models.SubmissionResult{Message: c.fallback}
	}
	if !env.Success {
		return models.SubmissionResult{Message: c.failureMessage(env.Data)}
	}

	var data struct {
		CartURL string `json:"cart_url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.CartURL == "" {
		logger.Warn("reservation succeeded without a cart URL", "product_id", res.ProductID)
		return models.SubmissionResult{Message: c.fallback}
	}

	return models.SubmissionResult{OK: true, CartURL: data.CartURL}
}
