package cli

import (
	"context"
	"fmt"
	"time"
)

// AnalyticsFlushCmd drains the local event spool to the collector.
type AnalyticsFlushCmd struct{}

func (c *AnalyticsFlushCmd) Run(ctx *Context) error {
	cfg, err := ctx.Load()
	if err != nil {
		return err
	}
	if cfg.AnalyticsURL == "" {
		return fmt.Errorf("no analytics_url configured; events stay in the local spool")
	}

	spool, err := ctx.OpenSpool(cfg)
	if err != nil {
		return err
	}
	defer spool.Close()

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := spool.Flush(reqCtx)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Delivered %d event(s)\n", n)
	return nil
}

// AnalyticsDepthCmd reports how many events are waiting locally.
type AnalyticsDepthCmd struct{}

func (c *AnalyticsDepthCmd) Run(ctx *Context) error {
	cfg, err := ctx.Load()
	if err != nil {
		return err
	}

	spool, err := ctx.OpenSpool(cfg)
	if err != nil {
		return err
	}
	defer spool.Close()

	n, err := spool.Depth()
	if err != nil {
		return err
	}
	fmt.Printf("%d event(s) pending\n", n)
	return nil
}
