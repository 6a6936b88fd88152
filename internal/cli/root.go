package cli

import (
	"errors"
	"path/filepath"

	"github.com/franpass87/bookwidget/internal/analytics"
	"github.com/franpass87/bookwidget/internal/backend"
	"github.com/franpass87/bookwidget/internal/config"
	"github.com/franpass87/bookwidget/internal/keyring"
)

// Context is passed to every command by kong.
type Context struct {
	ConfigPath string
	Debug      bool
}

// ConfigDir is where logs and the analytics spool live, next to the
// config file.
func (c *Context) ConfigDir() string {
	return filepath.Dir(c.ConfigPath)
}

// Load reads the widget configuration. When the file carries no token,
// the OS keyring is consulted; an absent keyring entry is not fatal here
// (the backend will reject unauthenticated calls, and doctor flags it).
func (c *Context) Load() (config.Widget, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return config.Widget{}, err
	}
	if cfg.Token == "" {
		token, err := keyring.GetToken()
		if err == nil {
			cfg.Token = token
		} else if !errors.Is(err, keyring.ErrNotFound) {
			return config.Widget{}, err
		}
	}
	return cfg, nil
}

// Client loads the config and builds a backend client from it.
func (c *Context) Client() (*backend.Client, config.Widget, error) {
	cfg, err := c.Load()
	if err != nil {
		return nil, config.Widget{}, err
	}
	return backend.New(cfg), cfg, nil
}

// OpenSpool opens the local analytics queue.
func (c *Context) OpenSpool(cfg config.Widget) (*analytics.Spool, error) {
	return analytics.OpenSpool(filepath.Join(c.ConfigDir(), "analytics.db"), cfg.AnalyticsURL)
}
