package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// AdminCalendarCmd prints the backend's calendar view. The payload is
// server-rendered JSON; this client shows it verbatim.
type AdminCalendarCmd struct{}

func (c *AdminCalendarCmd) Run(ctx *Context) error {
	client, _, err := ctx.Client()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	data, err := client.FetchCalendar(reqCtx)
	if err != nil {
		return err
	}
	return printRaw(data)
}

// AdminBookingsCmd prints the backend's bookings list, also verbatim.
type AdminBookingsCmd struct{}

func (c *AdminBookingsCmd) Run(ctx *Context) error {
	client, _, err := ctx.Client()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	data, err := client.FetchBookings(reqCtx)
	if err != nil {
		return err
	}
	return printRaw(data)
}

func printRaw(data json.RawMessage) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		buf = data
	}
	fmt.Println(string(buf))
	return nil
}
