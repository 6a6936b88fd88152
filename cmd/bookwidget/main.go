package main

import (
	"github.com/alecthomas/kong"

	"github.com/franpass87/bookwidget/internal/cli"
	"github.com/franpass87/bookwidget/internal/config"
	"github.com/franpass87/bookwidget/internal/errors"
	"github.com/franpass87/bookwidget/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Book  cli.BookCmd `cmd:"" help:"Launch the interactive booking widget." default:"1"`
	Admin struct {
		Calendar cli.AdminCalendarCmd `cmd:"" help:"Print the backend calendar view."`
		Bookings cli.AdminBookingsCmd `cmd:"" help:"Print the backend bookings list."`
	} `cmd:"" help:"Operator views."`
	Feature cli.FeatureCmd `cmd:"" help:"Toggle a backend feature flag."`
	Reset   cli.ResetCmd   `cmd:"" help:"Reset the backend installation."`
	Token   struct {
		Set   cli.TokenSetCmd   `cmd:"" help:"Store the API token in the OS keyring."`
		Show  cli.TokenShowCmd  `cmd:"" help:"Show the stored token (masked)."`
		Clear cli.TokenClearCmd `cmd:"" help:"Remove the stored token."`
	} `cmd:"" help:"Manage the backend API token."`
	Analytics struct {
		Flush cli.AnalyticsFlushCmd `cmd:"" help:"Deliver spooled events to the collector."`
		Depth cli.AnalyticsDepthCmd `cmd:"" help:"Show pending event count."`
	} `cmd:"" help:"Manage the local analytics queue."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run environment diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bookwidget"),
		kong.Description("Interactive booking widget for the event booking backend"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	if CLI.Config == "" {
		CLI.Config = config.DefaultPath()
	}

	appCtx := &cli.Context{
		ConfigPath: CLI.Config,
		Debug:      CLI.Debug,
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: appCtx.ConfigDir()}); err != nil {
		errors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
