package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/franpass87/bookwidget/internal/analytics"
	"github.com/franpass87/bookwidget/internal/logger"
	"github.com/franpass87/bookwidget/internal/tui"
)

// BookCmd launches the interactive booking widget.
type BookCmd struct{}

func (c *BookCmd) Run(ctx *Context) error {
	client, cfg, err := ctx.Client()
	if err != nil {
		return err
	}

	var sink analytics.Sink = analytics.Nop{}
	var spool *analytics.Spool
	if cfg.Analytics {
		spool, err = ctx.OpenSpool(cfg)
		if err != nil {
			// Analytics must never block the booking flow.
			logger.Warn("analytics spool unavailable", "error", err)
		} else {
			sink = spool
			defer spool.Close()
		}
	}

	p := tea.NewProgram(tui.NewModel(cfg, client, client, sink), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	if spool != nil {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := spool.Flush(flushCtx); err != nil {
			logger.Warn("analytics flush failed", "error", err)
		}
	}

	// A successful booking hands off to the server-side cart; printing
	// the URL as the last line is this client's page redirect.
	if m, ok := final.(tui.Model); ok && m.CartURL() != "" {
		fmt.Printf("Reservation added to cart → %s\n", m.CartURL())
	}
	return nil
}
