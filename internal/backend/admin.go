package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
)

// FetchCalendar returns the admin calendar view as the server rendered
// it. The payload is opaque to the client and printed verbatim.
func (c *Client) FetchCalendar(ctx context.Context) (json.RawMessage, error) {
	return c.fetchOpaque(ctx, actionAdminCalendar)
}

// FetchBookings returns the admin bookings list, also opaque.
func (c *Client) FetchBookings(ctx context.Context) (json.RawMessage, error) {
	return c.fetchOpaque(ctx, actionAdminBookings)
}

func (c *Client) fetchOpaque(ctx context.Context, action string) (json.RawMessage, error) {
	env, err := c.post(ctx, action, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, errors.New(c.failureMessage(env.Data))
	}
	return env.Data, nil
}

// ToggleFeature enables or disables a backend feature flag.
func (c *Client) ToggleFeature(ctx context.Context, key string, enabled bool) error {
	fields := url.Values{}
	fields.Set("feature", key)
	fields.Set("enabled", strconv.FormatBool(enabled))

	env, err := c.post(ctx, actionFeatureToggle, fields)
	if err != nil {
		return err
	}
	if !env.Success {
		return errors.New(c.failureMessage(env.Data))
	}
	return nil
}

// ResetInstallation wipes the backend installation state. On success the
// server reloads its configuration; the caller should tell the operator.
func (c *Client) ResetInstallation(ctx context.Context) error {
	env, err := c.post(ctx, actionReset, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return errors.New(c.failureMessage(env.Data))
	}
	return nil
}
