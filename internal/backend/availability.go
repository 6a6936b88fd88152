package backend

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/franpass87/bookwidget/internal/logger"
	"github.com/franpass87/bookwidget/internal/models"
)

// AvailabilityQuerier is the capability the widget controller needs to
// load slots for a date. Satisfied by *Client; tests substitute fakes.
type AvailabilityQuerier interface {
	QuerySlots(ctx context.Context, productID, date string) []models.Slot
}

// QuerySlots fetches the bookable slots for a product on a date, in the
// order the server returned them. An empty date performs no call.
//
// Failures soft-fail to an empty list: the widget shows no slots rather
// than an error. The failure still lands in the log so operators can see
// it.
func (c *Client) QuerySlots(ctx context.Context, productID, date string) []models.Slot {
	if date == "" {
		return nil
	}

	fields := url.Values{}
	fields.Set("product_id", productID)
	fields.Set("date", date)

	env, err := c.post(ctx, actionSlots, fields)
	if err != nil {
		logger.Warn("slot query failed", "product_id", productID, "date", date, "error", err)
		return nil
	}
	if !env.Success {
		logger.Warn("slot query rejected", "product_id", productID, "date", date)
		return nil
	}

	var data struct {
		Slots []models.Slot `json:"slots"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		logger.Warn("slot query returned malformed data", "product_id", productID, "date", date, "error", err)
		return nil
	}
	return data.Slots
}
