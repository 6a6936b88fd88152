package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/franpass87/bookwidget/internal/models"
)

// Widget is the immutable per-widget configuration. It is the Go-side
// equivalent of the markup data attributes a hosted widget would read:
// read once at startup, passed by value, never mutated.
type Widget struct {
	ProductID  string
	Endpoint   string
	Token      string
	AdultPrice models.Cents
	ChildPrice models.Cents
	Voucher    bool
	Analytics  bool

	// AnalyticsURL is the collector the event spool flushes to. Empty
	// means events accumulate locally only.
	AnalyticsURL string

	Currency   string
	DecimalSep string

	// ErrorFallback is shown when the backend fails without a message.
	ErrorFallback string

	Extras []models.Extra
}

// fileConfig is the on-disk TOML shape. Prices are decimal strings so the
// file never carries float rounding artifacts.
type fileConfig struct {
	ProductID     string      `toml:"product_id"`
	Endpoint      string      `toml:"endpoint"`
	Token         string      `toml:"token"`
	AdultPrice    string      `toml:"adult_price"`
	ChildPrice    string      `toml:"child_price"`
	Voucher       bool        `toml:"voucher"`
	Analytics     bool        `toml:"analytics"`
	AnalyticsURL  string      `toml:"analytics_url"`
	Currency      string      `toml:"currency"`
	DecimalSep    string      `toml:"decimal_separator"`
	ErrorFallback string      `toml:"error_fallback"`
	Extras        []fileExtra `toml:"extras"`
}

type fileExtra struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Price string `toml:"price"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "bookwidget", "config.toml")
}

// Load reads and validates the widget configuration. A missing token is
// not an error here; the caller may resolve one from the OS keyring.
func Load(path string) (Widget, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Widget{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Widget{
		ProductID:     fc.ProductID,
		Endpoint:      fc.Endpoint,
		Token:         fc.Token,
		Voucher:       fc.Voucher,
		Analytics:     fc.Analytics,
		AnalyticsURL:  fc.AnalyticsURL,
		Currency:      fc.Currency,
		DecimalSep:    fc.DecimalSep,
		ErrorFallback: fc.ErrorFallback,
	}
	if cfg.Currency == "" {
		cfg.Currency = "€"
	}
	if cfg.DecimalSep == "" {
		cfg.DecimalSep = ","
	}
	if cfg.ErrorFallback == "" {
		cfg.ErrorFallback = "Something went wrong, please try again"
	}

	if cfg.ProductID == "" {
		return Widget{}, fmt.Errorf("config %s: product_id is required", path)
	}
	if cfg.Endpoint == "" {
		return Widget{}, fmt.Errorf("config %s: endpoint is required", path)
	}

	var err error
	if cfg.AdultPrice, err = parsePrice(fc.AdultPrice); err != nil {
		return Widget{}, fmt.Errorf("config %s: adult_price: %w", path, err)
	}
	if cfg.ChildPrice, err = parsePrice(fc.ChildPrice); err != nil {
		return Widget{}, fmt.Errorf("config %s: child_price: %w", path, err)
	}

	for _, fe := range fc.Extras {
		price, err := parsePrice(fe.Price)
		if err != nil {
			return Widget{}, fmt.Errorf("config %s: extra %q: %w", path, fe.Name, err)
		}
		id := fe.ID
		if id == "" {
			id = fe.Name
		}
		cfg.Extras = append(cfg.Extras, models.Extra{
			ID:    id,
			Name:  fe.Name,
			Price: price,
		})
	}

	return cfg, nil
}

// parsePrice treats a missing price as zero rather than failing.
func parsePrice(s string) (models.Cents, error) {
	if s == "" {
		return 0, nil
	}
	return models.ParseAmount(s)
}
