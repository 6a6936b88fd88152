package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/franpass87/bookwidget/internal/config"
)

// Backend action ids. The server multiplexes every operation through one
// endpoint keyed on the action field, with a shared token for CSRF-style
// request verification.
const (
	actionSlots         = "booking_slots"
	actionReserve       = "booking_reserve"
	actionAdminCalendar = "admin_calendar"
	actionAdminBookings = "admin_bookings"
	actionFeatureToggle = "feature_toggle"
	actionReset         = "reset_install"
)

// Client talks to the remote booking service. It is safe for use from a
// single widget's event loop; in-flight requests are never cancelled,
// superseded responses are discarded by the caller instead.
type Client struct {
	hc       *http.Client
	endpoint string
	token    string
	fallback string
}

// New builds a client from the widget configuration. Requests use an
// explicit 10s timeout; expiry is treated like any other network failure.
func New(cfg config.Widget) *Client {
	return &Client{
		hc:       &http.Client{Timeout: 10 * time.Second},
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		fallback: cfg.ErrorFallback,
	}
}

// envelope is the uniform response shape: {success, data}. On failure,
// data optionally carries a user-facing message.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// post sends one action request and decodes the envelope. A non-2xx
// status or malformed body is a transport error.
func (c *Client) post(ctx context.Context, action string, fields url.Values) (envelope, error) {
	form := url.Values{}
	form.Set("action", action)
	form.Set("token", c.token)
	for k, vs := range fields {
		for _, v := range vs {
			form.Add(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return envelope{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return envelope{}, fmt.Errorf("%s failed (status=%d)", action, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, fmt.Errorf("%s returned malformed response: %w", action, err)
	}
	return env, nil
}

// Ping checks that the endpoint answers the protocol at all. A failure
// envelope still counts as reachable; only transport-level problems are
// reported.
func (c *Client) Ping(ctx context.Context, productID string) error {
	fields := url.Values{}
	fields.Set("product_id", productID)
	fields.Set("date", time.Now().Format("2006-01-02"))
	_, err := c.post(ctx, actionSlots, fields)
	return err
}

// failureMessage extracts the user-facing message from a failure
// envelope. The server sends either {"msg": "..."} or a bare string;
// anything else falls back to the configured generic error.
func (c *Client) failureMessage(data json.RawMessage) string {
	if len(data) > 0 {
		var obj struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(data, &obj); err == nil && obj.Msg != "" {
			return obj.Msg
		}
		var s string
		if err := json.Unmarshal(data, &s); err == nil && s != "" {
			return s
		}
	}
	return c.fallback
}
